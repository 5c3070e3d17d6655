package holiday

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/username/leave-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

func TestSet_On(t *testing.T) {
	set := NewSet(SampleHolidays())

	h, ok := set.On(dateutil.NewDate(2025, time.October, 12))
	if !ok {
		t.Fatal("On() did not find Columbus Day")
	}
	if h.Name != "Columbus Day" {
		t.Errorf("On() name = %q, want %q", h.Name, "Columbus Day")
	}

	if _, ok := set.On(dateutil.NewDate(2025, time.October, 13)); ok {
		t.Error("On() found a holiday on a plain day")
	}
}

func TestSet_DuplicateDateFirstWins(t *testing.T) {
	date := dateutil.NewDate(2025, time.December, 25)
	set := NewSet([]Holiday{
		{Date: date, Name: "Christmas Day"},
		{Date: date, Name: "Duplicate Entry"},
	})

	h, ok := set.On(date)
	if !ok {
		t.Fatal("On() did not find the holiday")
	}
	if h.Name != "Christmas Day" {
		t.Errorf("On() name = %q, want first entry to win", h.Name)
	}
	if len(set.All()) != 1 {
		t.Errorf("All() returned %d entries, want 1", len(set.All()))
	}
}

func TestLoadFile(t *testing.T) {
	content := `# October 2025 holidays
2025-10-12 Columbus Day

2025-10-31 Halloween
not-a-date Bad Line
2025-11-27
`
	path := filepath.Join(t.TempDir(), "holidays.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write holidays file: %v", err)
	}

	holidays, err := LoadFile(path, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if len(holidays) != 2 {
		t.Fatalf("LoadFile() returned %d holidays, want 2", len(holidays))
	}
	if holidays[0].Name != "Columbus Day" || !holidays[0].Date.Equal(dateutil.NewDate(2025, time.October, 12)) {
		t.Errorf("first holiday = %+v, want Columbus Day on 2025-10-12", holidays[0])
	}
	if holidays[1].Name != "Halloween" {
		t.Errorf("second holiday = %+v, want Halloween", holidays[1])
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())
	if err == nil {
		t.Error("LoadFile() expected error for missing file, got nil")
	}
}
