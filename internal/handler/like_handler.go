package handler

import (
	"net/http"
	"strconv"

	"spotter/internal/middleware"
	"spotter/internal/repository"
	"spotter/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeRepo    *repository.LikeRepository
	postRepo    *repository.PostRepository
	commentRepo *repository.CommentRepository
	userRepo    *repository.UserRepository
	notifSvc    *service.NotificationService
}

func NewLikeHandler(
	likeRepo *repository.LikeRepository,
	postRepo *repository.PostRepository,
	commentRepo *repository.CommentRepository,
	userRepo *repository.UserRepository,
	notifSvc *service.NotificationService,
) *LikeHandler {
	return &LikeHandler{likeRepo: likeRepo, postRepo: postRepo, commentRepo: commentRepo, userRepo: userRepo, notifSvc: notifSvc}
}

func (h *LikeHandler) LikePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	post, err := h.postRepo.GetByID(uint(postID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if liked, _ := h.likeRepo.HasLikedPost(userID, post.ID); liked {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	if err := h.likeRepo.LikePost(userID, post.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "like failed"})
		return
	}
	if post.UserID != userID {
		if liker, err := h.userRepo.GetByID(userID); err == nil {
			_ = h.notifSvc.NotifyPostLike(post.UserID, liker, post.ID)
		}
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (h *LikeHandler) UnlikePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.likeRepo.UnlikePost(userID, uint(postID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unlike failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *LikeHandler) LikeComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	commentID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	cm, err := h.commentRepo.GetByID(uint(commentID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	if liked, _ := h.likeRepo.HasLikedComment(userID, cm.ID); liked {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	if err := h.likeRepo.LikeComment(userID, cm.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "like failed"})
		return
	}
	if cm.UserID != userID {
		if liker, err := h.userRepo.GetByID(userID); err == nil {
			_ = h.notifSvc.NotifyCommentLike(cm.UserID, liker, cm.PostID)
		}
	}
	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}

func (h *LikeHandler) UnlikeComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	commentID, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if err := h.likeRepo.UnlikeComment(userID, uint(commentID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unlike failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
