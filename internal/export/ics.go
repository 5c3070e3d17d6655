package export

import (
	"fmt"
	"io"
	"time"

	"github.com/username/leave-calendar/internal/holiday"
	"github.com/username/leave-calendar/internal/roster"
	"github.com/username/leave-calendar/pkg/dateutil"
)

const icsProductID = "-//leave-calendar//EN"

// WriteICS writes leave records and holidays as an iCalendar document of
// all-day events. DTEND is exclusive per RFC 5545, so it falls on the day
// after the leave's inclusive end date. UIDs are stable so re-imports
// update rather than duplicate.
func WriteICS(w io.Writer, calName string, records []roster.LeaveRecord, holidays []holiday.Holiday) error {
	var err error
	p := func(format string, a ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format+"\r\n", a...)
		}
	}

	stamp := time.Now().UTC().Format("20060102T150405Z")

	p("BEGIN:VCALENDAR")
	p("VERSION:2.0")
	p("PRODID:%s", icsProductID)
	p("X-WR-CALNAME:%s", calName)
	p("CALSCALE:GREGORIAN")

	for _, r := range records {
		p("BEGIN:VEVENT")
		p("UID:leave-%d-%s@leave-calendar", r.ID, r.EmployeeID)
		p("DTSTAMP:%s", stamp)
		p("DTSTART;VALUE=DATE:%s", icsDate(r.StartDate))
		p("DTEND;VALUE=DATE:%s", icsDate(r.EndDate.AddDays(1)))
		p("SUMMARY:%s - %s", r.Employee, r.LeaveType.Label())
		p("DESCRIPTION:%s / %s", r.Department, r.Team)
		p("CATEGORIES:%s", r.LeaveType.Label())
		p("END:VEVENT")
	}

	for _, h := range holidays {
		p("BEGIN:VEVENT")
		p("UID:holiday-%s@leave-calendar", h.Date)
		p("DTSTAMP:%s", stamp)
		p("DTSTART;VALUE=DATE:%s", icsDate(h.Date))
		p("DTEND;VALUE=DATE:%s", icsDate(h.Date.AddDays(1)))
		p("SUMMARY:%s", h.Name)
		p("CATEGORIES:Public Holiday")
		p("END:VEVENT")
	}

	p("END:VCALENDAR")
	return err
}

func icsDate(d dateutil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}
