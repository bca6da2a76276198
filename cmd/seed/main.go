package main

import (
	"fmt"
	"os"
	"time"

	"github.com/arnavshah/clinic-roster-go/pkg/config"
	"github.com/arnavshah/clinic-roster-go/pkg/database"
	"github.com/arnavshah/clinic-roster-go/pkg/models"
	"github.com/arnavshah/clinic-roster-go/pkg/planner"
	"github.com/joho/godotenv"
)

// Seeds the store with a demo roster and a few shifts in the current month,
// for working on the scheduling page locally.
func main() {
	_ = godotenv.Load("../.env")
	_ = godotenv.Load(".env")

	clinic, err := config.Load("")
	if err != nil {
		fmt.Printf("Error: invalid clinic config: %v\n", err)
		os.Exit(1)
	}

	p := planner.New(clinic.Branches)
	p.ClosedWeekday = clinic.ClosedWeekday()

	drafts := []planner.EmployeeDraft{
		{Name: "Aiko Tanaka", Position: "Nurse", Branch: clinic.Branches[0], Type: models.FullTime},
		{Name: "Ben Carter", Position: "Receptionist", Branch: clinic.Branches[0], Type: models.FullTime},
		{Name: "Carla Mendes", Position: "Nurse", Branch: clinic.Branches[len(clinic.Branches)-1], Type: models.FullTime},
		{Name: "Dina Okafor", Position: "Physiotherapist", Type: models.PartTime},
		{Name: "Eli Novak", Position: "Nurse", Type: models.PartTime},
	}

	var added []*models.Employee
	for _, d := range drafts {
		emp, err := p.AddEmployee(d)
		if err != nil {
			fmt.Printf("Error: could not add %s: %v\n", d.Name, err)
			os.Exit(1)
		}
		added = append(added, emp)
	}

	// A working week for everyone, starting from today
	day := time.Now()
	for i := 0; i < 5; i++ {
		key := models.DateKey(day.AddDate(0, 0, i))
		if p.ClosedOn(key) {
			continue
		}
		for _, emp := range added {
			branch := emp.Branch
			if emp.Type == models.PartTime {
				branch = clinic.Branches[i%len(clinic.Branches)]
			}
			state := models.ShiftMorning
			if i%2 == 1 {
				state = models.ShiftAfternoon
			}
			if err := p.SetShift(emp.ID, key, state, branch); err != nil {
				fmt.Printf("Error: could not set shift for %s on %s: %v\n", emp.Name, key, err)
				os.Exit(1)
			}
		}
	}

	db := database.InitDB()
	if err := database.SaveSnapshot(db, p.Snapshot()); err != nil {
		fmt.Printf("Error: could not save snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seeded %d employees and %d scheduled days\n", len(added), len(p.Schedule))
}
