package handler

import (
	"net/http"
	"strconv"
	"time"

	"spotter/internal/domain"
	"spotter/internal/middleware"
	"spotter/internal/repository"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	repo *repository.WorkoutRepository
}

func NewWorkoutHandler(repo *repository.WorkoutRepository) *WorkoutHandler {
	return &WorkoutHandler{repo: repo}
}

// Month returns the calendar cells for one month. Defaults to the current one.
func (h *WorkoutHandler) Month(c *gin.Context) {
	userID := middleware.GetUserID(c)
	now := time.Now().UTC()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}
	list, err := h.repo.ListMonth(userID, year, time.Month(month))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workouts": list})
}

type RestDayRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// MarkRest marks a date as a rest day. A day already marked DONE by a proof
// post is overwritten; the calendar shows the latest intent.
func (h *WorkoutHandler) MarkRest(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req RestDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}
	if err := h.repo.Upsert(userID, date, domain.WorkoutRest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
