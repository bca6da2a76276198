package main

import (
	"log"
	"net/http"
	"os"

	"github.com/arnavshah/clinic-roster-go/pkg/config"
	"github.com/arnavshah/clinic-roster-go/pkg/database"
	"github.com/arnavshah/clinic-roster-go/pkg/handlers"
	"github.com/arnavshah/clinic-roster-go/pkg/planner"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	clinic, err := config.Load("")
	if err != nil {
		log.Fatalf("invalid clinic config: %v", err)
	}

	db := database.InitDB()

	p := planner.New(clinic.Branches)
	p.ClosedWeekday = clinic.ClosedWeekday()
	p.TargetMin = clinic.Target.Min
	p.TargetMax = clinic.Target.Max

	snap, err := database.LoadLatest(db)
	if err != nil {
		// Start with empty state; the UI renders and edits still persist
		log.Printf("could not load latest schedule document: %v", err)
	}
	p.Restore(snap)

	h := &handlers.Handler{DB: db, Planner: p}

	r := gin.Default()

	// Scheduling page served from embedded FS
	r.StaticFS("/static", h.GetStaticFS())
	r.GET("/app", h.SchedulePage)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Clinic Roster API",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/branches", h.ListBranches)
		api.GET("/roster", h.GetRoster)
		api.GET("/schedule", h.GetSchedule)
		api.GET("/headcount", h.GetHeadcount)
		api.POST("/employees", h.CreateEmployee)
		api.PUT("/employees/:id", h.UpdateEmployee)
		api.DELETE("/employees/:id", h.DeleteEmployee)
		api.PUT("/shifts", h.SetShift)
		api.PUT("/settings/day-off", h.SetDayOff)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
