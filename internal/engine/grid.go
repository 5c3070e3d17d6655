package engine

import (
	"github.com/username/leave-calendar/internal/roster"
	"github.com/username/leave-calendar/pkg/dateutil"
)

// Grid generates the ordered cell sequence for the current view, reference
// date and filter. "Today" is read from the clock once per call so the
// cells of a single grid never disagree across midnight.
func (e *Engine) Grid() []Cell {
	today := dateutil.DateOf(e.now())
	filtered := e.filter.Apply(e.store.Records())

	switch e.view {
	case ViewWeek:
		return e.weekGrid(filtered, today)
	default:
		return e.monthGrid(filtered, today)
	}
}

// monthGrid emits leading blank cells until day 1 lines up with its weekday
// column, then one cell per day of the month. The sequence is not padded to
// a multiple of 7; the trailing row may be short.
func (e *Engine) monthGrid(filtered []roster.LeaveRecord, today dateutil.Date) []Cell {
	first := e.reference.FirstOfMonth()
	leading := dateutil.WeekdayIndex(first.Weekday(), e.firstDay)
	days := first.DaysInMonth()

	cells := make([]Cell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		date := dateutil.NewDate(first.Year, first.Month, day)
		cells = append(cells, e.aggregate(date, filtered, today))
	}
	return cells
}

// weekGrid emits exactly 7 cells starting from the first day of the week
// containing the reference date.
func (e *Engine) weekGrid(filtered []roster.LeaveRecord, today dateutil.Date) []Cell {
	start := dateutil.StartOfWeek(e.reference, e.firstDay)

	cells := make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		cells = append(cells, e.aggregate(start.AddDays(i), filtered, today))
	}
	return cells
}

// aggregate builds the cell for one date: the stable subsequence of
// filtered records covering the date, the holiday falling on it, and the
// today marker. Input order is preserved; nothing is re-sorted.
func (e *Engine) aggregate(d dateutil.Date, filtered []roster.LeaveRecord, today dateutil.Date) Cell {
	cell := Cell{Date: d, IsToday: d.Equal(today)}

	for _, r := range filtered {
		if r.Covers(d) {
			cell.Leaves = append(cell.Leaves, r)
		}
	}

	if h, ok := e.holidays.On(d); ok {
		cell.Holiday = &h
	}

	return cell
}

// LeavesOn returns the filtered records covering the given date
func (e *Engine) LeavesOn(d dateutil.Date) []roster.LeaveRecord {
	var out []roster.LeaveRecord
	for _, r := range e.filter.Apply(e.store.Records()) {
		if r.Covers(d) {
			out = append(out, r)
		}
	}
	return out
}

// Summarize computes the summary counts for the current grid
func (e *Engine) Summarize() Summary {
	today := dateutil.DateOf(e.now())
	filtered := e.filter.Apply(e.store.Records())

	s := Summary{TotalLeaves: len(filtered)}
	for _, r := range filtered {
		if r.Covers(today) {
			s.OnLeaveToday++
		}
	}
	for _, cell := range e.Grid() {
		if !cell.Blank && len(cell.Leaves) > 1 {
			s.OverlapDays++
		}
	}
	return s
}
