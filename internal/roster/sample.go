package roster

import (
	"time"

	"github.com/username/leave-calendar/pkg/dateutil"
)

// SampleRecords returns the demo roster used when no roster file is
// configured. All ranges fall in October 2025.
func SampleRecords() []LeaveRecord {
	return []LeaveRecord{
		{
			ID:         1,
			Employee:   "John Smith",
			EmployeeID: "EMP-001",
			Department: "Engineering",
			Team:       "Frontend",
			LeaveType:  LeaveAnnual,
			StartDate:  dateutil.NewDate(2025, time.October, 2),
			EndDate:    dateutil.NewDate(2025, time.October, 4),
			Status:     "approved",
		},
		{
			ID:         2,
			Employee:   "Sarah Johnson",
			EmployeeID: "EMP-002",
			Department: "Engineering",
			Team:       "Backend",
			LeaveType:  LeaveSick,
			StartDate:  dateutil.NewDate(2025, time.October, 5),
			EndDate:    dateutil.NewDate(2025, time.October, 5),
			Status:     "approved",
		},
		{
			ID:         3,
			Employee:   "Mike Davis",
			EmployeeID: "EMP-003",
			Department: "Marketing",
			Team:       "Content",
			LeaveType:  LeavePersonal,
			StartDate:  dateutil.NewDate(2025, time.October, 8),
			EndDate:    dateutil.NewDate(2025, time.October, 10),
			Status:     "approved",
		},
		{
			ID:         4,
			Employee:   "Emily Chen",
			EmployeeID: "EMP-004",
			Department: "Engineering",
			Team:       "Frontend",
			LeaveType:  LeaveCasual,
			StartDate:  dateutil.NewDate(2025, time.October, 15),
			EndDate:    dateutil.NewDate(2025, time.October, 16),
			Status:     "approved",
		},
		{
			ID:         5,
			Employee:   "David Wilson",
			EmployeeID: "EMP-005",
			Department: "HR",
			Team:       "Recruitment",
			LeaveType:  LeaveAnnual,
			StartDate:  dateutil.NewDate(2025, time.October, 20),
			EndDate:    dateutil.NewDate(2025, time.October, 24),
			Status:     "approved",
		},
		{
			ID:         6,
			Employee:   "Lisa Anderson",
			EmployeeID: "EMP-006",
			Department: "Engineering",
			Team:       "Backend",
			LeaveType:  LeaveSick,
			StartDate:  dateutil.NewDate(2025, time.October, 8),
			EndDate:    dateutil.NewDate(2025, time.October, 9),
			Status:     "approved",
		},
		{
			ID:         7,
			Employee:   "Tom Brown",
			EmployeeID: "EMP-007",
			Department: "Sales",
			Team:       "Enterprise",
			LeaveType:  LeavePersonal,
			StartDate:  dateutil.NewDate(2025, time.October, 28),
			EndDate:    dateutil.NewDate(2025, time.October, 30),
			Status:     "approved",
		},
	}
}

// SampleStore returns a static store over the demo roster
func SampleStore() *StaticStore {
	return NewStaticStore(SampleRecords())
}
