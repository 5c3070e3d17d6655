package holiday

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/username/leave-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// Holiday is a named public holiday on a single calendar date
type Holiday struct {
	Date dateutil.Date
	Name string
}

// Set provides exact-date holiday lookup. When two entries share a date the
// first one is authoritative.
type Set struct {
	byDate map[dateutil.Date]Holiday
	all    []Holiday
}

// NewSet builds a set from the given holidays
func NewSet(holidays []Holiday) *Set {
	s := &Set{byDate: make(map[dateutil.Date]Holiday)}
	for _, h := range holidays {
		if _, exists := s.byDate[h.Date]; exists {
			continue
		}
		s.byDate[h.Date] = h
		s.all = append(s.all, h)
	}
	return s
}

// On returns the holiday falling on the given date, if any
func (s *Set) On(d dateutil.Date) (Holiday, bool) {
	h, ok := s.byDate[d]
	return h, ok
}

// All returns the holidays in the set, in insertion order
func (s *Set) All() []Holiday {
	return s.all
}

// LoadFile reads holidays from a text file.
// Format: one holiday per line, "YYYY-MM-DD Name"; blank lines and lines
// starting with # are ignored.
func LoadFile(filePath string, logger *zap.Logger) ([]Holiday, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holidays file: %w", err)
	}
	defer file.Close()

	var holidays []Holiday
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		if len(parts) < 2 {
			logger.Warn("Invalid holiday line format", zap.String("line", line))
			continue
		}

		date, err := dateutil.ParseDate(parts[0])
		if err != nil {
			logger.Warn("Failed to parse holiday date",
				zap.String("date", parts[0]),
				zap.Error(err))
			continue
		}

		holidays = append(holidays, Holiday{
			Date: date,
			Name: strings.TrimSpace(parts[1]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holidays file: %w", err)
	}

	logger.Info("Holidays file loaded",
		zap.String("file", filePath),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}

// SampleHolidays returns the demo holiday list for October 2025
func SampleHolidays() []Holiday {
	return []Holiday{
		{Date: dateutil.NewDate(2025, time.October, 12), Name: "Columbus Day"},
		{Date: dateutil.NewDate(2025, time.October, 31), Name: "Halloween"},
	}
}
