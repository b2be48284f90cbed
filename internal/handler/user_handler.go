package handler

import (
	"net/http"
	"strconv"
	"strings"

	"spotter/internal/middleware"
	"spotter/internal/repository"
	"spotter/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userRepo *repository.UserRepository
	relSvc   *service.RelationshipService
}

func NewUserHandler(userRepo *repository.UserRepository, relSvc *service.RelationshipService) *UserHandler {
	return &UserHandler{userRepo: userRepo, relSvc: relSvc}
}

// Search matches usernames by prefix; each result carries the derived
// relation so the add-friend screen can render the right button.
func (h *UserHandler) Search(c *gin.Context) {
	userID := middleware.GetUserID(c)
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	list, err := h.userRepo.SearchByUsername(q, userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, u := range list {
		rel, err := h.relSvc.Status(userID, u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
			return
		}
		out = append(out, gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"avatar_url": u.AvatarURL,
			"relation":   rel,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	otherID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	u, err := h.userRepo.GetByID(uint(otherID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	rel, err := h.relSvc.Status(userID, u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          u.ID,
			"username":    u.Username,
			"avatar_url":  u.AvatarURL,
			"description": u.Description,
			"created_at":  u.CreatedAt,
		},
		"relation": rel,
	})
}
