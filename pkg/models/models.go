package models

import (
	"encoding/json"
	"strings"
	"time"
)

// ShiftState is the displayable state of a schedule cell
type ShiftState string

const (
	ShiftMorning      ShiftState = "morning"
	ShiftAfternoon    ShiftState = "afternoon"
	ShiftDayOff       ShiftState = "day-off"
	ShiftLeave        ShiftState = "leave"
	ShiftSick         ShiftState = "sick"
	ShiftClinicClosed ShiftState = "clinic-closed"
	ShiftEmpty        ShiftState = ""
)

// IsWorking reports whether the state is an actual working shift
func (s ShiftState) IsWorking() bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// Valid reports whether the state is one of the known shift states
func (s ShiftState) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftDayOff, ShiftLeave, ShiftSick, ShiftClinicClosed, ShiftEmpty:
		return true
	}
	return false
}

// EmployeeType distinguishes branch-bound staff from the floating pool
type EmployeeType string

const (
	FullTime EmployeeType = "full-time"
	PartTime EmployeeType = "part-time"
)

// PartTimePool is the placeholder branch recorded for part-time employees,
// who have no fixed home branch.
const PartTimePool = "part-time pool"

// Employee represents one person on the roster
type Employee struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Position string       `json:"position"`
	Branch   string       `json:"branch"`
	Type     EmployeeType `json:"type"`
}

// ShiftEntry is the value stored for one employee on one date. It is either a
// bare state tag or, for a part-time employee working at a specific branch, a
// branch-scoped working assignment. Build one with Tag or WorkingAssignment;
// Branch is only ever set by the latter.
type ShiftEntry struct {
	State  ShiftState
	Branch string
}

// Tag builds a bare, branch-agnostic entry
func Tag(state ShiftState) ShiftEntry {
	return ShiftEntry{State: state}
}

// WorkingAssignment builds a branch-scoped working entry
func WorkingAssignment(state ShiftState, branch string) ShiftEntry {
	return ShiftEntry{State: state, Branch: branch}
}

// IsWorkingAssignment reports whether the entry is branch-scoped
func (e ShiftEntry) IsWorkingAssignment() bool {
	return e.Branch != ""
}

// entryObject is the wire shape of a working assignment
type entryObject struct {
	State  ShiftState `json:"state"`
	Branch string     `json:"branch"`
}

// MarshalJSON writes a bare tag as a plain string and a working assignment as
// an object, the two shapes used by the persisted schedule documents.
func (e ShiftEntry) MarshalJSON() ([]byte, error) {
	if !e.IsWorkingAssignment() {
		return json.Marshal(string(e.State))
	}
	return json.Marshal(entryObject{State: e.State, Branch: e.Branch})
}

// UnmarshalJSON accepts both the string and the object shape
func (e *ShiftEntry) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		*e = Tag(ShiftState(tag))
		return nil
	}
	var obj entryObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*e = ShiftEntry{State: obj.State, Branch: obj.Branch}
	return nil
}

// Snapshot is the whole-state document written to and read from the store.
// The schedule here is keyed employee id first, day key second (the inverse
// of the in-memory orientation).
type Snapshot struct {
	Employees []Employee                       `json:"employees"`
	Schedule  map[string]map[string]ShiftEntry `json:"schedule"`
	Date      string                           `json:"date"`
}

const dateLayout = "2006-01-02"

// DateKey formats a time as the zero-padded YYYY-MM-DD schedule key
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateKey parses a schedule key back into a time
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(dateLayout, key)
}

// WeekdayOf returns the weekday of a schedule key
func WeekdayOf(key string) (time.Weekday, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// ParseWeekday resolves a weekday name, case-insensitively
func ParseWeekday(name string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, true
		}
	}
	return 0, false
}
