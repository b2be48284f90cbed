package handler

import (
	"net/http"
	"strconv"

	"spotter/internal/middleware"
	"spotter/internal/repository"
	"spotter/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	repo     *repository.NotificationRepository
	userRepo *repository.UserRepository
}

func NewNotificationHandler(repo *repository.NotificationRepository, userRepo *repository.UserRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo, userRepo: userRepo}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListByUserID(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

// Unread reports the badge state: true when the newest notification is past
// the user's read watermark.
func (h *NotificationHandler) Unread(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	latest, err := h.repo.LatestCreatedAt(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": service.IsUnread(latest, u.NotificationCheckedAt)})
}
