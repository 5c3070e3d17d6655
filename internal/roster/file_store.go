package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// FileStore loads leave records from a JSON file.
// The file holds an array of LeaveRecord objects with dates as
// "YYYY-MM-DD" strings.
type FileStore struct {
	filePath string
	logger   *zap.Logger
	records  []LeaveRecord
}

// NewFileStore creates a new FileStore instance
func NewFileStore(filePath string, logger *zap.Logger) *FileStore {
	return &FileStore{
		filePath: filePath,
		logger:   logger,
	}
}

// Load reads and validates the roster file. Validation happens here, at
// record construction, not in the calendar engine: records whose range can
// never match a date (start after end) or that carry an unknown leave type
// are dropped with a warning.
func (fs *FileStore) Load() error {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return fmt.Errorf("failed to read roster file: %w", err)
	}

	var records []LeaveRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse roster file: %w", err)
	}

	kept := make([]LeaveRecord, 0, len(records))
	for _, r := range records {
		if r.StartDate.After(r.EndDate) {
			fs.logger.Warn("Skipping record with inverted date range",
				zap.Int("id", r.ID),
				zap.String("employee", r.Employee),
				zap.String("start", r.StartDate.String()),
				zap.String("end", r.EndDate.String()))
			continue
		}
		if !r.LeaveType.Valid() {
			fs.logger.Warn("Skipping record with unknown leave type",
				zap.Int("id", r.ID),
				zap.String("leave_type", string(r.LeaveType)))
			continue
		}
		kept = append(kept, r)
	}

	fs.records = kept
	fs.logger.Info("Roster file loaded",
		zap.String("file", fs.filePath),
		zap.Int("records", len(kept)),
		zap.Int("skipped", len(records)-len(kept)))

	return nil
}

// Records returns the loaded records
func (fs *FileStore) Records() []LeaveRecord {
	return fs.records
}
