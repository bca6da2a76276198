package planner

import (
	"errors"
	"fmt"

	"github.com/arnavshah/clinic-roster-go/pkg/models"
)

var (
	// ErrIncompleteEmployee is returned when a required roster field is missing
	ErrIncompleteEmployee = errors.New("please fill in all required fields")

	// ErrInvalidEmployeeType is returned for a type outside full-time/part-time
	ErrInvalidEmployeeType = errors.New("employee type must be full-time or part-time")
)

// EmployeeDraft carries the mutable roster fields for add and edit
type EmployeeDraft struct {
	Name     string              `json:"name"`
	Position string              `json:"position"`
	Branch   string              `json:"branch"`
	Type     models.EmployeeType `json:"type"`
}

func (d EmployeeDraft) validate() error {
	if d.Type != models.FullTime && d.Type != models.PartTime {
		return ErrInvalidEmployeeType
	}
	if d.Name == "" || d.Position == "" {
		return ErrIncompleteEmployee
	}
	if d.Type == models.FullTime && d.Branch == "" {
		return ErrIncompleteEmployee
	}
	return nil
}

// AddEmployee appends a new roster record. Ids are the type prefix plus the
// ordinal count of same-type employees, which can repeat after a delete;
// kept as-is for compatibility with existing schedule documents.
func (p *Planner) AddEmployee(d EmployeeDraft) (*models.Employee, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	prefix := "emp"
	branch := d.Branch
	if d.Type == models.PartTime {
		prefix = "pte"
		branch = models.PartTimePool
	}

	count := 0
	for _, e := range p.Employees {
		if e.Type == d.Type {
			count++
		}
	}

	emp := &models.Employee{
		ID:       fmt.Sprintf("%s%d", prefix, count+1),
		Name:     d.Name,
		Position: d.Position,
		Branch:   branch,
		Type:     d.Type,
	}
	p.Employees = append(p.Employees, emp)
	return emp, nil
}

// UpdateEmployee replaces the mutable fields of an existing record
func (p *Planner) UpdateEmployee(id string, d EmployeeDraft) (*models.Employee, error) {
	emp := p.Employee(id)
	if emp == nil {
		return nil, ErrUnknownEmployee
	}
	if err := d.validate(); err != nil {
		return nil, err
	}

	emp.Name = d.Name
	emp.Position = d.Position
	emp.Type = d.Type
	if d.Type == models.PartTime {
		emp.Branch = models.PartTimePool
	} else {
		emp.Branch = d.Branch
	}
	return emp, nil
}

// DeleteEmployee removes a roster record and every schedule entry keyed by
// its id; a date whose inner map empties out is removed with it.
func (p *Planner) DeleteEmployee(id string) error {
	idx := -1
	for i, e := range p.Employees {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownEmployee
	}
	p.Employees = append(p.Employees[:idx], p.Employees[idx+1:]...)

	for dayKey, byEmp := range p.Schedule {
		delete(byEmp, id)
		if len(byEmp) == 0 {
			delete(p.Schedule, dayKey)
		}
	}
	return nil
}
