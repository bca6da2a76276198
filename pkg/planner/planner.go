package planner

import (
	"errors"
	"fmt"

	"github.com/arnavshah/clinic-roster-go/pkg/models"
)

var (
	// ErrUnknownEmployee is returned when an id is not on the roster
	ErrUnknownEmployee = errors.New("employee not found")

	// ErrClinicClosed is returned when an edit targets the clinic-wide day off
	ErrClinicClosed = errors.New("the clinic is closed on that day")

	// ErrInvalidShift is returned for a state outside the known set
	ErrInvalidShift = errors.New("unknown shift state")
)

// BranchConflictError reports that a part-time employee already holds a
// working assignment at another branch on the same date.
type BranchConflictError struct {
	Branch string
}

func (e *BranchConflictError) Error() string {
	return fmt.Sprintf("already working at %s on that date", e.Branch)
}

// Planner owns the roster, the schedule grid and the clinic-wide settings.
// All mutations go through its methods; handlers serialize access.
type Planner struct {
	Employees []*models.Employee
	// Schedule maps day key -> employee id -> entry. Inner maps are created
	// on first edit and removed once empty.
	Schedule map[string]map[string]models.ShiftEntry
	// Branches is the ordered branch list, fixed at startup
	Branches []string
	// ClosedWeekday is the clinic-wide day off as a weekday name, empty when none
	ClosedWeekday string
	// TargetMin and TargetMax bound the advisory per-day headcount band
	TargetMin int
	TargetMax int
}

// New builds an empty planner for the given branch set
func New(branches []string) *Planner {
	return &Planner{
		Schedule:  make(map[string]map[string]models.ShiftEntry),
		Branches:  branches,
		TargetMin: 3,
		TargetMax: 4,
	}
}

// Employee returns the roster record for an id, or nil
func (p *Planner) Employee(id string) *models.Employee {
	for _, e := range p.Employees {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// HasBranch reports whether a branch name is part of the configured set
func (p *Planner) HasBranch(branch string) bool {
	for _, b := range p.Branches {
		if b == branch {
			return true
		}
	}
	return false
}

// ClosedOn reports whether the date falls on the clinic-wide day off
func (p *Planner) ClosedOn(dayKey string) bool {
	if p.ClosedWeekday == "" {
		return false
	}
	wd, err := models.WeekdayOf(dayKey)
	if err != nil {
		return false
	}
	return wd.String() == p.ClosedWeekday
}

// SetShift applies one cell edit for the table of viewedBranch. The clinic
// day-off gate runs first and wins over every other rule; a part-time working
// shift is then checked against the other branches before being stored as a
// branch-scoped assignment. Rejections leave the schedule untouched.
func (p *Planner) SetShift(employeeID, dayKey string, state models.ShiftState, viewedBranch string) error {
	emp := p.Employee(employeeID)
	if emp == nil {
		return ErrUnknownEmployee
	}
	if !state.Valid() {
		return ErrInvalidShift
	}
	if _, err := models.ParseDateKey(dayKey); err != nil {
		return fmt.Errorf("invalid date %q: %w", dayKey, err)
	}

	if p.ClosedOn(dayKey) && state != models.ShiftClinicClosed {
		return ErrClinicClosed
	}

	if emp.Type == models.PartTime && state.IsWorking() {
		if cur, ok := p.Schedule[dayKey][employeeID]; ok && cur.IsWorkingAssignment() && cur.Branch != viewedBranch {
			return &BranchConflictError{Branch: cur.Branch}
		}
		p.put(dayKey, employeeID, models.WorkingAssignment(state, viewedBranch))
		return nil
	}

	// Non-working tags are branch-agnostic and overwrite any working
	// assignment wherever it was held. Full-time staff always store bare tags.
	if state == models.ShiftEmpty {
		p.clear(dayKey, employeeID)
		return nil
	}
	p.put(dayKey, employeeID, models.Tag(state))
	return nil
}

// EffectiveShift resolves the tag that displays for an employee in the table
// of viewedBranch on a date. A clinic-wide day off overrides any stored value.
func (p *Planner) EffectiveShift(employeeID, dayKey, viewedBranch string) models.ShiftState {
	if p.ClosedOn(dayKey) {
		return models.ShiftClinicClosed
	}
	entry, ok := p.Schedule[dayKey][employeeID]
	if !ok {
		return models.ShiftEmpty
	}
	if entry.IsWorkingAssignment() {
		if entry.Branch == viewedBranch {
			return entry.State
		}
		// Working elsewhere: shown as unassigned in this branch's table
		return models.ShiftEmpty
	}
	return entry.State
}

func (p *Planner) put(dayKey, employeeID string, entry models.ShiftEntry) {
	byEmp, ok := p.Schedule[dayKey]
	if !ok {
		byEmp = make(map[string]models.ShiftEntry)
		p.Schedule[dayKey] = byEmp
	}
	byEmp[employeeID] = entry
}

func (p *Planner) clear(dayKey, employeeID string) {
	byEmp, ok := p.Schedule[dayKey]
	if !ok {
		return
	}
	delete(byEmp, employeeID)
	if len(byEmp) == 0 {
		delete(p.Schedule, dayKey)
	}
}
