package handler

import (
	"net/http"
	"strconv"
	"time"

	"spotter/internal/middleware"
	"spotter/internal/repository"
	"spotter/internal/service"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	relSvc     *service.RelationshipService
	friendRepo *repository.FriendRepository
	userRepo   *repository.UserRepository
}

func NewFriendHandler(relSvc *service.RelationshipService, friendRepo *repository.FriendRepository, userRepo *repository.UserRepository) *FriendHandler {
	return &FriendHandler{relSvc: relSvc, friendRepo: friendRepo, userRepo: userRepo}
}

type CreateRequestBody struct {
	ToUserID uint `json:"to_user_id" binding:"required"`
}

func (h *FriendHandler) CreateRequest(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req CreateRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	self, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	if err := h.relSvc.CreateRequest(self, req.ToUserID); err != nil {
		switch err {
		case service.ErrSelfRequest, service.ErrAlreadyRelated:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case service.ErrRequestNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

type AcceptRequestBody struct {
	RequestID  uint `json:"request_id"`
	FromUserID uint `json:"from_user_id"`
}

// AcceptRequest returns 404 with a distinct message when the request was
// cancelled concurrently, so the client refreshes its lists instead of
// showing a generic failure.
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req AcceptRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RequestID == 0 && req.FromUserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request_id or from_user_id required"})
		return
	}
	self, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	if err := h.relSvc.AcceptRequest(self, req.RequestID, req.FromUserID); err != nil {
		if err == service.ErrRequestNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "request no longer valid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "accept failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type RefuseRequestBody struct {
	RequestID  uint `json:"request_id"`
	FromUserID uint `json:"from_user_id"`
}

func (h *FriendHandler) RefuseRequest(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req RefuseRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RequestID == 0 && req.FromUserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request_id or from_user_id required"})
		return
	}
	if err := h.relSvc.RefuseRequest(userID, req.RequestID, req.FromUserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "refuse failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *FriendHandler) Unfriend(c *gin.Context) {
	userID := middleware.GetUserID(c)
	otherID, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err := h.relSvc.Unfriend(userID, uint(otherID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unfriend failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *FriendHandler) Poke(c *gin.Context) {
	userID := middleware.GetUserID(c)
	friendID, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
	self, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	if err := h.relSvc.Poke(self, uint(friendID), time.Now()); err != nil {
		switch err {
		case service.ErrNotFriends:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case service.ErrPokeCooldown:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "poke failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *FriendHandler) ListRequests(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.friendRepo.ListIncomingPending(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, fr := range list {
		out = append(out, gin.H{
			"id":         fr.ID,
			"from_id":    fr.FromID,
			"created_at": fr.CreatedAt,
			"from": gin.H{
				"id":         fr.From.ID,
				"username":   fr.From.Username,
				"avatar_url": fr.From.AvatarURL,
			},
		})
	}
	c.JSON(http.StatusOK, gin.H{"requests": out})
}

func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID := middleware.GetUserID(c)
	list, err := h.friendRepo.ListFriends(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, fr := range list {
		friend := fr.From
		if fr.FromID == userID {
			friend = fr.To
		}
		out = append(out, gin.H{
			"id":          friend.ID,
			"username":    friend.Username,
			"avatar_url":  friend.AvatarURL,
			"description": friend.Description,
			"since":       fr.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"friends": out})
}

// Status returns the derived relation toward another user.
func (h *FriendHandler) Status(c *gin.Context) {
	userID := middleware.GetUserID(c)
	otherID, _ := strconv.ParseUint(c.Param("user_id"), 10, 64)
	rel, err := h.relSvc.Status(userID, uint(otherID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "status failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"relation": rel})
}
