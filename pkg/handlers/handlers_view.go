package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/arnavshah/clinic-roster-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// ListBranches returns the ordered branch set
func (h *Handler) ListBranches(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"branches": h.Planner.Branches,
		"day_off":  h.Planner.ClosedWeekday,
	})
}

// GetRoster returns the employees visible in one branch's table
func (h *Handler) GetRoster(c *gin.Context) {
	branch := c.Query("branch")

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.Planner.HasBranch(branch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown branch: " + branch})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": h.Planner.VisibleRoster(branch)})
}

// GetSchedule returns the month grid for one branch
func (h *Handler) GetSchedule(c *gin.Context) {
	branch := c.Query("branch")
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query parameters are required"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.Planner.HasBranch(branch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown branch: " + branch})
		return
	}

	c.JSON(http.StatusOK, h.Planner.BuildMonthView(year, time.Month(month), branch))
}

// GetHeadcount returns the advisory staffing figure for one branch and date
func (h *Handler) GetHeadcount(c *gin.Context) {
	branch := c.Query("branch")
	date := c.Query("date")
	if _, err := models.ParseDateKey(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.Planner.HasBranch(branch) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown branch: " + branch})
		return
	}

	count := h.Planner.DailyHeadcount(date, branch)
	c.JSON(http.StatusOK, gin.H{
		"branch": branch,
		"date":   date,
		"count":  count,
		"level":  h.Planner.HeadcountLevel(count),
	})
}
