package handler

import (
	"net/http"
	"strconv"

	"spotter/internal/middleware"
	"spotter/internal/models"
	"spotter/internal/repository"
	"spotter/internal/service"
	"spotter/pkg/mention"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentRepo *repository.CommentRepository
	postRepo    *repository.PostRepository
	userRepo    *repository.UserRepository
	notifSvc    *service.NotificationService
}

func NewCommentHandler(
	commentRepo *repository.CommentRepository,
	postRepo *repository.PostRepository,
	userRepo *repository.UserRepository,
	notifSvc *service.NotificationService,
) *CommentHandler {
	return &CommentHandler{commentRepo: commentRepo, postRepo: postRepo, userRepo: userRepo, notifSvc: notifSvc}
}

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,max=1000"`
}

// Create adds a comment, notifies the post author, and sends a MENTION
// notification to every @username the body references. Notifications are
// best effort; the comment stays even if one fails.
func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := h.postRepo.GetByID(uint(postID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	author, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	cm := &models.Comment{PostID: post.ID, UserID: userID, Body: req.Body}
	if err := h.commentRepo.Create(cm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	if post.UserID != userID {
		_ = h.notifSvc.NotifyComment(post.UserID, author, post.ID, req.Body)
	}
	h.notifyMentions(author, post, req.Body)
	c.JSON(http.StatusCreated, gin.H{"comment": cm})
}

// notifyMentions resolves @usernames to users and notifies each once. The
// commenter and the post author (already notified above) are skipped.
func (h *CommentHandler) notifyMentions(author *models.User, post *models.Post, body string) {
	for _, name := range mention.Extract(body) {
		u, err := h.userRepo.GetByUsername(name)
		if err != nil {
			continue
		}
		if u.ID == author.ID || u.ID == post.UserID {
			continue
		}
		_ = h.notifSvc.NotifyMention(u.ID, author, post.ID, body)
	}
}

func (h *CommentHandler) List(c *gin.Context) {
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.commentRepo.ListByPostID(uint(postID), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, cm := range list {
		out = append(out, gin.H{
			"id":         cm.ID,
			"post_id":    cm.PostID,
			"body":       cm.Body,
			"created_at": cm.CreatedAt,
			"author": gin.H{
				"id":         cm.User.ID,
				"username":   cm.User.Username,
				"avatar_url": cm.User.AvatarURL,
			},
		})
	}
	c.JSON(http.StatusOK, gin.H{"comments": out})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	rows, err := h.commentRepo.Delete(uint(id), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
