package planner

import (
	"errors"
	"testing"

	"github.com/arnavshah/clinic-roster-go/pkg/models"
)

func TestAddEmployeeValidation(t *testing.T) {
	p := New([]string{branchA, branchB})

	cases := []struct {
		name  string
		draft EmployeeDraft
		want  error
	}{
		{"missing name", EmployeeDraft{Position: "Nurse", Branch: branchA, Type: models.FullTime}, ErrIncompleteEmployee},
		{"missing position", EmployeeDraft{Name: "Aiko", Branch: branchA, Type: models.FullTime}, ErrIncompleteEmployee},
		{"full-time without branch", EmployeeDraft{Name: "Aiko", Position: "Nurse", Type: models.FullTime}, ErrIncompleteEmployee},
		{"bad type", EmployeeDraft{Name: "Aiko", Position: "Nurse", Type: "contractor"}, ErrInvalidEmployeeType},
	}
	for _, tc := range cases {
		if _, err := p.AddEmployee(tc.draft); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if len(p.Employees) != 0 {
		t.Errorf("Rejected drafts must not mutate the roster, got %d employees", len(p.Employees))
	}

	// Part-time needs no branch
	if _, err := p.AddEmployee(EmployeeDraft{Name: "Dina", Position: "Physio", Type: models.PartTime}); err != nil {
		t.Errorf("Expected part-time add without branch to succeed, got %v", err)
	}
}

func TestEmployeeIDGeneration(t *testing.T) {
	p := New([]string{branchA})

	ft1, _ := p.AddEmployee(EmployeeDraft{Name: "A", Position: "Nurse", Branch: branchA, Type: models.FullTime})
	ft2, _ := p.AddEmployee(EmployeeDraft{Name: "B", Position: "Nurse", Branch: branchA, Type: models.FullTime})
	pt1, _ := p.AddEmployee(EmployeeDraft{Name: "C", Position: "Physio", Type: models.PartTime})

	if ft1.ID != "emp1" || ft2.ID != "emp2" || pt1.ID != "pte1" {
		t.Errorf("Expected emp1/emp2/pte1, got %s/%s/%s", ft1.ID, ft2.ID, pt1.ID)
	}

	// Count-based ids repeat after a delete; pinned so a change is deliberate
	if err := p.DeleteEmployee(ft1.ID); err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}
	ft3, _ := p.AddEmployee(EmployeeDraft{Name: "D", Position: "Nurse", Branch: branchA, Type: models.FullTime})
	if ft3.ID != "emp2" {
		t.Errorf("Expected count-based id emp2 after delete, got %s", ft3.ID)
	}
}

func TestPartTimeBranchForcedToPool(t *testing.T) {
	p := New([]string{branchA})

	pt, err := p.AddEmployee(EmployeeDraft{Name: "Dina", Position: "Physio", Branch: branchA, Type: models.PartTime})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}
	if pt.Branch != models.PartTimePool {
		t.Errorf("Expected pool sentinel branch, got %q", pt.Branch)
	}
}

func TestUpdateEmployee(t *testing.T) {
	p := New([]string{branchA, branchB})
	ft, _ := p.AddEmployee(EmployeeDraft{Name: "Aiko", Position: "Nurse", Branch: branchA, Type: models.FullTime})

	got, err := p.UpdateEmployee(ft.ID, EmployeeDraft{Name: "Aiko T", Position: "Head Nurse", Branch: branchB, Type: models.FullTime})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if got.Name != "Aiko T" || got.Position != "Head Nurse" || got.Branch != branchB {
		t.Errorf("Expected updated fields, got %+v", got)
	}

	// Switching to part-time forces the pool sentinel
	got, err = p.UpdateEmployee(ft.ID, EmployeeDraft{Name: "Aiko T", Position: "Head Nurse", Branch: branchB, Type: models.PartTime})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if got.Branch != models.PartTimePool {
		t.Errorf("Expected pool sentinel after type change, got %q", got.Branch)
	}

	if _, err := p.UpdateEmployee("ghost", EmployeeDraft{Name: "X", Position: "Y", Branch: branchA, Type: models.FullTime}); !errors.Is(err, ErrUnknownEmployee) {
		t.Errorf("Expected ErrUnknownEmployee, got %v", err)
	}
}

func TestDeleteEmployeeCascades(t *testing.T) {
	p, ft, pt := newTestPlanner(t)

	if err := p.SetShift(ft.ID, "2025-06-03", models.ShiftMorning, branchA); err != nil {
		t.Fatalf("SetShift returned error: %v", err)
	}
	if err := p.SetShift(ft.ID, "2025-06-04", models.ShiftAfternoon, branchA); err != nil {
		t.Fatalf("SetShift returned error: %v", err)
	}
	if err := p.SetShift(pt.ID, "2025-06-04", models.ShiftMorning, branchB); err != nil {
		t.Fatalf("SetShift returned error: %v", err)
	}

	if err := p.DeleteEmployee(ft.ID); err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}

	if p.Employee(ft.ID) != nil {
		t.Error("Expected employee to be removed from the roster")
	}
	if _, ok := p.Schedule["2025-06-03"]; ok {
		t.Error("Expected 2025-06-03 to be pruned once its only entry was removed")
	}
	if _, ok := p.Schedule["2025-06-04"][pt.ID]; !ok {
		t.Error("Expected the other employee's entry on 2025-06-04 to survive")
	}
	if _, ok := p.Schedule["2025-06-04"][ft.ID]; ok {
		t.Error("Expected the deleted employee's entry on 2025-06-04 to be gone")
	}

	if err := p.DeleteEmployee("ghost"); !errors.Is(err, ErrUnknownEmployee) {
		t.Errorf("Expected ErrUnknownEmployee, got %v", err)
	}
}
