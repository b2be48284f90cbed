package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"spotter/internal/domain"
	"spotter/internal/middleware"
	"spotter/internal/repository"
	"spotter/internal/service"
	"spotter/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MeHandler struct {
	userRepo *repository.UserRepository
	pushSvc  *service.PushService
	cloud    cloudinary.Client
}

func NewMeHandler(userRepo *repository.UserRepository, pushSvc *service.PushService, cloud cloudinary.Client) *MeHandler {
	return &MeHandler{userRepo: userRepo, pushSvc: pushSvc, cloud: cloud}
}

func (h *MeHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

type UpdateProfileRequest struct {
	Username    *string `json:"username"`
	Description *string `json:"description"`
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username != nil {
		name := strings.TrimSpace(*req.Username)
		if utf8.RuneCountInString(name) < domain.MinUsernameLen {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username must be at least 3 characters"})
			return
		}
		if name != u.Username {
			if _, err := h.userRepo.GetByUsername(name); err == nil {
				c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
				return
			}
			u.Username = name
		}
	}
	if req.Description != nil {
		u.Description = *req.Description
	}
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UploadAvatar replaces the profile photo via Cloudinary.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()
	folder := "spotter/avatars/" + strconv.FormatUint(uint64(userID), 10)
	publicID := "avatar_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	url, _, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	u.AvatarURL = url
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

type SyncPushTokenRequest struct {
	Token   string `json:"token"`
	Granted *bool  `json:"granted" binding:"required"`
}

// SyncPushToken reconciles the device's push token and permission state with
// the stored setting. Called on app start and on return to foreground.
func (h *MeHandler) SyncPushToken(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req SyncPushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setting, err := h.pushSvc.SyncDevice(userID, req.Token, *req.Granted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "push token update failed"})
		return
	}
	if setting == nil {
		c.JSON(http.StatusOK, gin.H{"push_setting": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"push_setting": setting})
}

type UpdatePushSettingsRequest struct {
	GrantedTypes []string `json:"granted_types" binding:"required"`
}

// UpdatePushSettings replaces the notification categories the user opted into.
func (h *MeHandler) UpdatePushSettings(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req UpdatePushSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setting, err := h.pushSvc.UpdateGranted(userID, req.GrantedTypes)
	if err != nil {
		if err == service.ErrUnknownNotificationType {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"push_setting": setting})
}

// MarkNotificationsChecked advances the read watermark to now, clearing the
// unread badge for everything created up to this instant.
func (h *MeHandler) MarkNotificationsChecked(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := h.userRepo.TouchNotificationCheckedAt(userID, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
