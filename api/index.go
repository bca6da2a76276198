package handler

import (
	"log"
	"net/http"

	"github.com/arnavshah/clinic-roster-go/pkg/config"
	"github.com/arnavshah/clinic-roster-go/pkg/database"
	"github.com/arnavshah/clinic-roster-go/pkg/handlers"
	"github.com/arnavshah/clinic-roster-go/pkg/planner"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

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
		log.Printf("could not load latest schedule document: %v", err)
	}
	p.Restore(snap)

	h := &handlers.Handler{DB: db, Planner: p}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Static files served from embedded FS
	r.StaticFS("/static", h.GetStaticFS())
	r.GET("/app", h.SchedulePage)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Clinic Roster API (Vercel)",
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
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
