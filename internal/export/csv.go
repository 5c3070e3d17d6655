package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/username/leave-calendar/internal/roster"
)

// WriteCSV writes one row per leave record with a header line
func WriteCSV(w io.Writer, records []roster.LeaveRecord) error {
	cw := csv.NewWriter(w)

	header := []string{
		"id", "employee", "employee_id", "department", "team",
		"leave_type", "start_date", "end_date", "status",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Employee,
			r.EmployeeID,
			r.Department,
			r.Team,
			string(r.LeaveType),
			r.StartDate.String(),
			r.EndDate.String(),
			r.Status,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
