package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/username/leave-calendar/internal/engine"
	"github.com/username/leave-calendar/internal/holiday"
	"github.com/username/leave-calendar/internal/roster"
	"github.com/username/leave-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer

	err := WriteICS(&buf, "Team Leave", roster.SampleRecords(), holiday.SampleHolidays())
	if err != nil {
		t.Fatalf("WriteICS() error = %v", err)
	}

	out := buf.String()

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 9 {
		t.Errorf("VEVENT count = %d, want 9 (7 leaves + 2 holidays)", got)
	}
	if !strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n") {
		t.Error("output does not start with BEGIN:VCALENDAR")
	}
	if !strings.Contains(out, "SUMMARY:John Smith - Annual Leave") {
		t.Error("missing summary for John Smith's leave")
	}
	// John Smith's leave runs Oct 2-4 inclusive; DTEND is exclusive.
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20251002") {
		t.Error("missing DTSTART for October 2")
	}
	if !strings.Contains(out, "DTEND;VALUE=DATE:20251005") {
		t.Error("DTEND should be October 5 (day after inclusive end)")
	}
	if !strings.Contains(out, "SUMMARY:Columbus Day") {
		t.Error("missing holiday event for Columbus Day")
	}
	if !strings.Contains(out, "END:VCALENDAR") {
		t.Error("missing END:VCALENDAR")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteCSV(&buf, roster.SampleRecords()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("CSV has %d lines, want 8 (header + 7 records)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,employee,employee_id") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "John Smith") || !strings.Contains(lines[1], "2025-10-02") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
}

func TestMonthPDF(t *testing.T) {
	e := engine.New(roster.SampleStore(), holiday.NewSet(holiday.SampleHolidays()), time.Sunday, zap.NewNop())
	e.SetReference(dateutil.NewDate(2025, time.October, 1))

	path := filepath.Join(t.TempDir(), "october.pdf")
	if err := MonthPDF(path, "October 2025", e.Grid(), time.Sunday); err != nil {
		t.Fatalf("MonthPDF() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PDF file is empty")
	}
}
