package engine

import (
	"fmt"
	"time"

	"github.com/username/leave-calendar/internal/holiday"
	"github.com/username/leave-calendar/internal/roster"
	"github.com/username/leave-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// ViewMode selects the calendar layout
type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
)

// ParseViewMode parses a view mode string
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewMonth:
		return ViewMonth, nil
	case ViewWeek:
		return ViewWeek, nil
	}
	return "", fmt.Errorf("view mode must be 'month' or 'week', got '%s'", s)
}

// Cell is one slot in a generated calendar grid. Month grids begin with
// blank alignment cells that carry no date.
type Cell struct {
	Date    dateutil.Date
	Blank   bool
	IsToday bool
	Leaves  []roster.LeaveRecord
	Holiday *holiday.Holiday
}

// Summary holds the reduction counts derived from the current grid
type Summary struct {
	TotalLeaves  int // records passing the current filter
	OnLeaveToday int // filtered records whose range covers today
	OverlapDays  int // grid cells with more than one overlapping leave
}

// Engine computes leave-overlap calendar grids over a read-only roster and
// holiday set. It owns the mutable reference date, view mode and filter
// state for a single session; calls are expected to be serialized by the
// surrounding host.
type Engine struct {
	store     roster.Store
	holidays  *holiday.Set
	filter    roster.Filter
	view      ViewMode
	reference dateutil.Date
	firstDay  time.Weekday
	now       func() time.Time
	logger    *zap.Logger
}

// New creates an engine anchored at today's date in month view.
// firstDay sets the first-day-of-week convention; it governs both the
// month-view leading blanks and the week-view start.
func New(store roster.Store, holidays *holiday.Set, firstDay time.Weekday, logger *zap.Logger) *Engine {
	e := &Engine{
		store:    store,
		holidays: holidays,
		view:     ViewMonth,
		firstDay: firstDay,
		now:      time.Now,
		logger:   logger,
	}
	e.reference = dateutil.DateOf(e.now())
	return e
}

// Reference returns the current reference date
func (e *Engine) Reference() dateutil.Date {
	return e.reference
}

// SetReference anchors the engine at the given date
func (e *Engine) SetReference(d dateutil.Date) {
	e.reference = d
}

// View returns the current view mode
func (e *Engine) View() ViewMode {
	return e.view
}

// SetView switches between month and week layout
func (e *Engine) SetView(v ViewMode) {
	e.view = v
}

// Filter returns the current filter state
func (e *Engine) Filter() roster.Filter {
	return e.filter
}

// SetFilter replaces the current filter state
func (e *Engine) SetFilter(f roster.Filter) {
	e.filter = f
}

// PrevMonth moves the reference date to day 1 of the previous month.
// The day resets to 1 to avoid month-length overflow.
func (e *Engine) PrevMonth() {
	e.reference = dateutil.DateOf(
		time.Date(e.reference.Year, e.reference.Month-1, 1, 0, 0, 0, 0, time.UTC))
	e.logger.Debug("Navigated to previous month",
		zap.String("reference", e.reference.String()))
}

// NextMonth moves the reference date to day 1 of the next month
func (e *Engine) NextMonth() {
	e.reference = dateutil.DateOf(
		time.Date(e.reference.Year, e.reference.Month+1, 1, 0, 0, 0, 0, time.UTC))
	e.logger.Debug("Navigated to next month",
		zap.String("reference", e.reference.String()))
}

// PrevWeek shifts the reference date back by exactly 7 days
func (e *Engine) PrevWeek() {
	e.reference = e.reference.AddDays(-7)
	e.logger.Debug("Navigated to previous week",
		zap.String("reference", e.reference.String()))
}

// NextWeek shifts the reference date forward by exactly 7 days
func (e *Engine) NextWeek() {
	e.reference = e.reference.AddDays(7)
	e.logger.Debug("Navigated to next week",
		zap.String("reference", e.reference.String()))
}

// GoToToday resets the reference date to the current wall-clock date
func (e *Engine) GoToToday() {
	e.reference = dateutil.DateOf(e.now())
	e.logger.Debug("Navigated to today",
		zap.String("reference", e.reference.String()))
}
