package dateutil

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component.
// Leave ranges and holidays carry date-only semantics; keeping them in a
// dedicated type instead of time.Time removes timezone and clock-time
// ambiguity from comparisons.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of the given instant, discarding time-of-day
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current wall-clock date
func Today() Date {
	return DateOf(time.Now())
}

// Time returns midnight local time on the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays returns the date n days after d (n may be negative).
// Month and year boundaries roll over via time.Date normalization.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Weekday returns the day of the week for the date
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// Before reports whether d is earlier than o
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// After reports whether d is later than o
func (d Date) After(o Date) bool {
	return o.Before(d)
}

// Equal reports whether d and o are the same calendar date
func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

// IsZero reports whether d is the zero Date
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal: %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate parses a date string in various formats
func ParseDate(dateStr string) (Date, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// FirstOfMonth returns the first day of the month containing d
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// DaysInMonth returns the number of days in the month containing d
func (d Date) DaysInMonth() int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekend returns true if the date is Saturday or Sunday
func (d Date) IsWeekend() bool {
	weekday := d.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// WeekdayIndex returns the zero-based position of weekday w in a week that
// starts on firstDay. With firstDay=Sunday, Sunday=0 and Saturday=6.
func WeekdayIndex(w, firstDay time.Weekday) int {
	return (int(w) - int(firstDay) + 7) % 7
}

// StartOfWeek returns the most recent firstDay on or before d
func StartOfWeek(d Date, firstDay time.Weekday) Date {
	return d.AddDays(-WeekdayIndex(d.Weekday(), firstDay))
}

// InRange reports whether d falls within the inclusive range [start, end].
// A range whose start is after its end matches no date.
func InRange(d, start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}
