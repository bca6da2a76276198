package planner

import (
	"time"

	"github.com/arnavshah/clinic-roster-go/pkg/models"
)

// Snapshot packs the current roster and schedule into the persisted document
// shape, which keys the schedule by employee id first.
func (p *Planner) Snapshot() *models.Snapshot {
	snap := &models.Snapshot{
		Employees: make([]models.Employee, 0, len(p.Employees)),
		Schedule:  make(map[string]map[string]models.ShiftEntry),
		Date:      models.DateKey(time.Now()),
	}
	for _, e := range p.Employees {
		snap.Employees = append(snap.Employees, *e)
	}
	for dayKey, byEmp := range p.Schedule {
		for empID, entry := range byEmp {
			if snap.Schedule[empID] == nil {
				snap.Schedule[empID] = make(map[string]models.ShiftEntry)
			}
			snap.Schedule[empID][dayKey] = entry
		}
	}
	return snap
}

// Restore replaces the roster and schedule wholesale from a loaded document.
// A nil snapshot resets to empty state.
func (p *Planner) Restore(snap *models.Snapshot) {
	p.Employees = nil
	p.Schedule = make(map[string]map[string]models.ShiftEntry)
	if snap == nil {
		return
	}
	for i := range snap.Employees {
		emp := snap.Employees[i]
		p.Employees = append(p.Employees, &emp)
	}
	for empID, byDay := range snap.Schedule {
		for dayKey, entry := range byDay {
			p.put(dayKey, empID, entry)
		}
	}
}
