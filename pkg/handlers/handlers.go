package handlers

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sync"

	"github.com/arnavshah/clinic-roster-go/pkg/database"
	"github.com/arnavshah/clinic-roster-go/pkg/models"
	"github.com/arnavshah/clinic-roster-go/pkg/planner"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

//go:embed static/*
var staticEmbed embed.FS

// Handler contains dependencies for the route handlers
type Handler struct {
	DB      *gorm.DB
	Planner *planner.Planner

	// mu serializes access: the model assumes a single editor, but HTTP
	// requests arrive concurrently
	mu sync.Mutex
}

// persist writes the whole-state snapshot after a successful mutation. A
// failed save is logged and does not undo the mutation.
func (h *Handler) persist() {
	if h.DB == nil {
		return
	}
	if err := database.SaveSnapshot(h.DB, h.Planner.Snapshot()); err != nil {
		log.Printf("could not save schedule document: %v", err)
	}
}

// rejectionStatus maps a planner rejection to an HTTP status
func rejectionStatus(err error) int {
	var conflict *planner.BranchConflictError
	switch {
	case errors.Is(err, planner.ErrUnknownEmployee):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrClinicClosed), errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// CreateEmployee adds a roster record
func (h *Handler) CreateEmployee(c *gin.Context) {
	var draft planner.EmployeeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if draft.Type == models.FullTime && draft.Branch != "" && !h.Planner.HasBranch(draft.Branch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown branch: " + draft.Branch})
		return
	}

	emp, err := h.Planner.AddEmployee(draft)
	if err != nil {
		c.JSON(rejectionStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.persist()
	c.JSON(http.StatusCreated, emp)
}

// UpdateEmployee replaces an employee's mutable fields
func (h *Handler) UpdateEmployee(c *gin.Context) {
	var draft planner.EmployeeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if draft.Type == models.FullTime && draft.Branch != "" && !h.Planner.HasBranch(draft.Branch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown branch: " + draft.Branch})
		return
	}

	emp, err := h.Planner.UpdateEmployee(c.Param("id"), draft)
	if err != nil {
		c.JSON(rejectionStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.persist()
	c.JSON(http.StatusOK, emp)
}

// DeleteEmployee removes an employee and all of their schedule entries.
// The first call answers with a confirmation question; repeating the request
// with confirm=true performs the delete.
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")

	h.mu.Lock()
	defer h.mu.Unlock()

	emp := h.Planner.Employee(id)
	if emp == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": planner.ErrUnknownEmployee.Error()})
		return
	}

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusOK, gin.H{
			"requires_confirmation": true,
			"message":               fmt.Sprintf("Delete %s? All of their schedule entries will be removed.", emp.Name),
		})
		return
	}

	if err := h.Planner.DeleteEmployee(id); err != nil {
		c.JSON(rejectionStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.persist()
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// SetShift applies one schedule cell edit for the branch being viewed
func (h *Handler) SetShift(c *gin.Context) {
	var req struct {
		EmployeeID string `json:"employee_id"`
		Date       string `json:"date"`
		Value      string `json:"value"`
		Branch     string `json:"branch"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.Planner.HasBranch(req.Branch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown branch: " + req.Branch})
		return
	}

	if err := h.Planner.SetShift(req.EmployeeID, req.Date, models.ShiftState(req.Value), req.Branch); err != nil {
		c.JSON(rejectionStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.persist()
	c.JSON(http.StatusOK, gin.H{
		"employee_id": req.EmployeeID,
		"date":        req.Date,
		"effective":   h.Planner.EffectiveShift(req.EmployeeID, req.Date, req.Branch),
	})
}

// SetDayOff selects the clinic-wide day off; "none" clears it
func (h *Handler) SetDayOff(c *gin.Context) {
	var req struct {
		Weekday string `json:"weekday"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if req.Weekday == "" || req.Weekday == "none" {
		h.Planner.ClosedWeekday = ""
		c.JSON(http.StatusOK, gin.H{"day_off": "none"})
		return
	}

	wd, ok := models.ParseWeekday(req.Weekday)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a weekday name: " + req.Weekday})
		return
	}
	h.Planner.ClosedWeekday = wd.String()
	c.JSON(http.StatusOK, gin.H{"day_off": wd.String()})
}

// SchedulePage serves the scheduling page from embedded files
func (h *Handler) SchedulePage(c *gin.Context) {
	data, err := staticEmbed.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "static/index.html not found in embedded FS"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// GetStaticFS returns the embedded filesystem for static assets
func (h *Handler) GetStaticFS() http.FileSystem {
	sub, err := fs.Sub(staticEmbed, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
