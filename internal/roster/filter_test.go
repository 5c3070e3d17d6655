package roster

import (
	"reflect"
	"testing"
)

func names(records []LeaveRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Employee
	}
	return out
}

func TestFilterApply_Department(t *testing.T) {
	f := Filter{Department: "Engineering"}

	result := f.Apply(SampleRecords())

	want := []string{"John Smith", "Sarah Johnson", "Emily Chen", "Lisa Anderson"}
	if !reflect.DeepEqual(names(result), want) {
		t.Errorf("Apply() = %v, want %v", names(result), want)
	}
}

func TestFilterApply_Combined(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "no filter returns everything",
			filter: Filter{},
			want: []string{
				"John Smith", "Sarah Johnson", "Mike Davis", "Emily Chen",
				"David Wilson", "Lisa Anderson", "Tom Brown",
			},
		},
		{
			name:   "department and team",
			filter: Filter{Department: "Engineering", Team: "Backend"},
			want:   []string{"Sarah Johnson", "Lisa Anderson"},
		},
		{
			name:   "employee id",
			filter: Filter{EmployeeID: "EMP-004"},
			want:   []string{"Emily Chen"},
		},
		{
			name:   "contradictory fields match nothing",
			filter: Filter{Department: "Sales", Team: "Frontend"},
			want:   []string{},
		},
		{
			name:   "matching is case-sensitive",
			filter: Filter{Department: "engineering"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.filter.Apply(SampleRecords())

			if !reflect.DeepEqual(names(result), tt.want) {
				t.Errorf("Apply() = %v, want %v", names(result), tt.want)
			}
		})
	}
}

func TestFilterApply_Idempotent(t *testing.T) {
	f := Filter{Department: "Engineering", Team: "Frontend"}

	once := f.Apply(SampleRecords())
	twice := f.Apply(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter is not idempotent: %v != %v", names(once), names(twice))
	}
}

func TestFilterApply_FieldOrderIndependent(t *testing.T) {
	records := SampleRecords()

	deptThenTeam := Filter{Team: "Backend"}.Apply(Filter{Department: "Engineering"}.Apply(records))
	teamThenDept := Filter{Department: "Engineering"}.Apply(Filter{Team: "Backend"}.Apply(records))
	combined := Filter{Department: "Engineering", Team: "Backend"}.Apply(records)

	if !reflect.DeepEqual(deptThenTeam, teamThenDept) {
		t.Errorf("field order changed the result: %v != %v", names(deptThenTeam), names(teamThenDept))
	}
	if !reflect.DeepEqual(deptThenTeam, combined) {
		t.Errorf("sequential application differs from combined filter: %v != %v",
			names(deptThenTeam), names(combined))
	}
}

func TestFilterApply_DoesNotMutateInput(t *testing.T) {
	records := SampleRecords()
	before := make([]LeaveRecord, len(records))
	copy(before, records)

	Filter{Department: "HR"}.Apply(records)

	if !reflect.DeepEqual(records, before) {
		t.Error("Apply() modified the input slice")
	}
}

func TestDistinctHelpers(t *testing.T) {
	records := SampleRecords()

	wantDepts := []string{"Engineering", "Marketing", "HR", "Sales"}
	if got := Departments(records); !reflect.DeepEqual(got, wantDepts) {
		t.Errorf("Departments() = %v, want %v", got, wantDepts)
	}

	wantTeams := []string{"Frontend", "Backend", "Content", "Recruitment", "Enterprise"}
	if got := Teams(records); !reflect.DeepEqual(got, wantTeams) {
		t.Errorf("Teams() = %v, want %v", got, wantTeams)
	}

	employees := Employees(records)
	if len(employees) != 7 {
		t.Fatalf("Employees() returned %d entries, want 7", len(employees))
	}
	if employees[0].ID != "EMP-001" || employees[0].Name != "John Smith" {
		t.Errorf("Employees()[0] = %+v, want EMP-001/John Smith", employees[0])
	}
}
