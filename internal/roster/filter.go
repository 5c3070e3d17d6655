package roster

// Filter narrows a record list by exact-match predicates. Empty fields are
// wildcards; non-empty fields must equal the record's value exactly
// (case-sensitive). The three fields compose commutatively, so applying
// them in any order yields the same subset.
type Filter struct {
	Department string
	Team       string
	EmployeeID string
}

// IsZero reports whether the filter has no active predicates
func (f Filter) IsZero() bool {
	return f.Department == "" && f.Team == "" && f.EmployeeID == ""
}

// Matches reports whether the record passes every non-empty predicate
func (f Filter) Matches(r LeaveRecord) bool {
	if f.Department != "" && r.Department != f.Department {
		return false
	}
	if f.Team != "" && r.Team != f.Team {
		return false
	}
	if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
		return false
	}
	return true
}

// Apply returns the records that pass the filter, preserving input order.
// The input slice is never modified.
func (f Filter) Apply(records []LeaveRecord) []LeaveRecord {
	if f.IsZero() {
		return records
	}

	var out []LeaveRecord
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
