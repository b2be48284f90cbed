package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"spotter/internal/domain"
	"spotter/internal/middleware"
	"spotter/internal/models"
	"spotter/internal/repository"
	"spotter/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PostHandler struct {
	postRepo    *repository.PostRepository
	commentRepo *repository.CommentRepository
	likeRepo    *repository.LikeRepository
	friendRepo  *repository.FriendRepository
	workoutRepo *repository.WorkoutRepository
	cloud       cloudinary.Client
	pageSize    int
}

func NewPostHandler(
	postRepo *repository.PostRepository,
	commentRepo *repository.CommentRepository,
	likeRepo *repository.LikeRepository,
	friendRepo *repository.FriendRepository,
	workoutRepo *repository.WorkoutRepository,
	cloud cloudinary.Client,
	pageSize int,
) *PostHandler {
	return &PostHandler{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		friendRepo:  friendRepo,
		workoutRepo: workoutRepo,
		cloud:       cloud,
		pageSize:    pageSize,
	}
}

// Create uploads the proof photo and marks today as DONE in the workout
// history. The history write is best effort relative to the post itself.
func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	caption := c.PostForm("caption")
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()
	folder := "spotter/posts/" + strconv.FormatUint(uint64(userID), 10)
	publicID := "proof_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	url, thumb, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	p := &models.Post{
		UserID:       userID,
		ImageURL:     url,
		ThumbnailURL: thumb,
		Caption:      caption,
	}
	if err := h.postRepo.Create(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	_ = h.workoutRepo.Upsert(userID, time.Now().UTC(), domain.WorkoutDone)
	c.JSON(http.StatusCreated, gin.H{"post": p})
}

// Feed returns posts by the user and their friends, each enriched with like
// count, a sample of liker avatars, and the latest comment.
func (h *PostHandler) Feed(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.pageSize)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	friendIDs, err := h.friendRepo.FriendIDs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "feed failed"})
		return
	}
	posts, err := h.postRepo.ListByUserIDs(append(friendIDs, userID), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "feed failed"})
		return
	}
	out := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		out = append(out, h.feedEntry(&p, userID))
	}
	c.JSON(http.StatusOK, gin.H{"posts": out})
}

func (h *PostHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	p, err := h.postRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": h.feedEntry(p, userID)})
}

func (h *PostHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	rows, err := h.postRepo.Delete(uint(id), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *PostHandler) feedEntry(p *models.Post, viewerID uint) gin.H {
	likeCount, _ := h.likeRepo.CountByPostID(p.ID)
	likedByMe, _ := h.likeRepo.HasLikedPost(viewerID, p.ID)
	avatars, _ := h.likeRepo.RecentLikerAvatars(p.ID, 3)
	commentCount, _ := h.commentRepo.CountByPostID(p.ID)
	entry := gin.H{
		"id":            p.ID,
		"user_id":       p.UserID,
		"image_url":     p.ImageURL,
		"thumbnail_url": p.ThumbnailURL,
		"caption":       p.Caption,
		"created_at":    p.CreatedAt,
		"author": gin.H{
			"id":         p.User.ID,
			"username":   p.User.Username,
			"avatar_url": p.User.AvatarURL,
		},
		"like_count":    likeCount,
		"liked_by_me":   likedByMe,
		"liker_avatars": avatars,
		"comment_count": commentCount,
	}
	if latest, _ := h.commentRepo.LatestByPostID(p.ID); latest != nil {
		entry["latest_comment"] = gin.H{
			"id":       latest.ID,
			"body":     latest.Body,
			"username": latest.User.Username,
		}
	}
	return entry
}
