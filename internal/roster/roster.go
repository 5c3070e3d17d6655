package roster

import (
	"github.com/username/leave-calendar/pkg/dateutil"
)

// LeaveType classifies a leave record
type LeaveType string

const (
	LeaveAnnual    LeaveType = "annual"
	LeaveSick      LeaveType = "sick"
	LeavePersonal  LeaveType = "personal"
	LeaveCasual    LeaveType = "casual"
	LeaveMaternity LeaveType = "maternity"
	LeavePaternity LeaveType = "paternity"
)

// Label returns the display name for the leave type
func (lt LeaveType) Label() string {
	switch lt {
	case LeaveAnnual:
		return "Annual Leave"
	case LeaveSick:
		return "Sick Leave"
	case LeavePersonal:
		return "Personal Leave"
	case LeaveCasual:
		return "Casual Leave"
	case LeaveMaternity:
		return "Maternity Leave"
	case LeavePaternity:
		return "Paternity Leave"
	}
	return string(lt)
}

// Color returns the display color associated with the leave type.
// Rendering is the caller's concern; the engine never reads this.
func (lt LeaveType) Color() string {
	switch lt {
	case LeaveAnnual:
		return "blue"
	case LeaveSick:
		return "red"
	case LeavePersonal:
		return "purple"
	case LeaveCasual:
		return "green"
	case LeaveMaternity:
		return "pink"
	case LeavePaternity:
		return "indigo"
	}
	return ""
}

// Valid reports whether the leave type is one of the known values
func (lt LeaveType) Valid() bool {
	switch lt {
	case LeaveAnnual, LeaveSick, LeavePersonal, LeaveCasual, LeaveMaternity, LeavePaternity:
		return true
	}
	return false
}

// LeaveRecord is a single absence for one employee over an inclusive date
// range. Records are created externally; the calendar engine only reads them.
type LeaveRecord struct {
	ID         int           `json:"id"`
	Employee   string        `json:"employee"`
	EmployeeID string        `json:"employee_id"`
	Department string        `json:"department"`
	Team       string        `json:"team"`
	LeaveType  LeaveType     `json:"leave_type"`
	StartDate  dateutil.Date `json:"start_date"`
	EndDate    dateutil.Date `json:"end_date"`
	Status     string        `json:"status"`
}

// Covers reports whether the record's leave range contains the given date
func (r LeaveRecord) Covers(d dateutil.Date) bool {
	return dateutil.InRange(d, r.StartDate, r.EndDate)
}

// Store provides a read-only view of leave records
type Store interface {
	Records() []LeaveRecord
}

// StaticStore serves a fixed in-memory record list
type StaticStore struct {
	records []LeaveRecord
}

// NewStaticStore creates a store over the given records
func NewStaticStore(records []LeaveRecord) *StaticStore {
	return &StaticStore{records: records}
}

// Records returns the stored records
func (s *StaticStore) Records() []LeaveRecord {
	return s.records
}

// Employee identifies a filterable employee
type Employee struct {
	ID   string
	Name string
}

// Departments returns the distinct departments across records, in first-seen order
func Departments(records []LeaveRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if !seen[r.Department] {
			seen[r.Department] = true
			out = append(out, r.Department)
		}
	}
	return out
}

// Teams returns the distinct teams across records, in first-seen order
func Teams(records []LeaveRecord) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		if !seen[r.Team] {
			seen[r.Team] = true
			out = append(out, r.Team)
		}
	}
	return out
}

// Employees returns the distinct employees across records, in first-seen order
func Employees(records []LeaveRecord) []Employee {
	seen := make(map[string]bool)
	var out []Employee
	for _, r := range records {
		if !seen[r.EmployeeID] {
			seen[r.EmployeeID] = true
			out = append(out, Employee{ID: r.EmployeeID, Name: r.Employee})
		}
	}
	return out
}
