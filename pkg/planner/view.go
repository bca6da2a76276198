package planner

import (
	"time"

	"github.com/arnavshah/clinic-roster-go/pkg/models"
)

// VisibleRoster returns the employees shown in a branch's table: every
// part-time employee plus the full-time staff homed at that branch.
func (p *Planner) VisibleRoster(branch string) []*models.Employee {
	visible := make([]*models.Employee, 0, len(p.Employees))
	for _, e := range p.Employees {
		if e.Type == models.PartTime || e.Branch == branch {
			visible = append(visible, e)
		}
	}
	return visible
}

// DailyHeadcount counts employees whose effective shift at the branch on the
// date is a working state. A closed date always counts zero.
func (p *Planner) DailyHeadcount(dayKey, branch string) int {
	if p.ClosedOn(dayKey) {
		return 0
	}
	count := 0
	for _, e := range p.Employees {
		if p.EffectiveShift(e.ID, dayKey, branch).IsWorking() {
			count++
		}
	}
	return count
}

// HeadcountLevel grades a count against the advisory target band. Display
// hint only; nothing enforces it.
func (p *Planner) HeadcountLevel(count int) string {
	switch {
	case count < p.TargetMin:
		return "low"
	case count > p.TargetMax:
		return "high"
	default:
		return "ok"
	}
}

// DayCount is one day's staffing figure in a month view
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level string `json:"level"`
}

// MonthView is the derived grid a branch's table renders for one month
type MonthView struct {
	Branch    string                                  `json:"branch"`
	Year      int                                     `json:"year"`
	Month     int                                     `json:"month"`
	Days      []string                                `json:"days"`
	Employees []*models.Employee                      `json:"employees"`
	Cells     map[string]map[string]models.ShiftState `json:"cells"`
	Counts    []DayCount                              `json:"counts"`
}

// BuildMonthView projects the current state into the per-day grid for a
// branch: visible roster, effective state per cell, headcount per day.
func (p *Planner) BuildMonthView(year int, month time.Month, branch string) *MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	view := &MonthView{
		Branch:    branch,
		Year:      year,
		Month:     int(month),
		Days:      make([]string, 0, daysInMonth),
		Employees: p.VisibleRoster(branch),
		Cells:     make(map[string]map[string]models.ShiftState),
		Counts:    make([]DayCount, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		key := models.DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		view.Days = append(view.Days, key)

		count := p.DailyHeadcount(key, branch)
		view.Counts = append(view.Counts, DayCount{
			Date:  key,
			Count: count,
			Level: p.HeadcountLevel(count),
		})

		for _, e := range view.Employees {
			state := p.EffectiveShift(e.ID, key, branch)
			if state == models.ShiftEmpty {
				continue
			}
			if view.Cells[e.ID] == nil {
				view.Cells[e.ID] = make(map[string]models.ShiftState)
			}
			view.Cells[e.ID][key] = state
		}
	}
	return view
}
