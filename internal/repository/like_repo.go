package repository

import (
	"spotter/internal/models"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) LikePost(userID, postID uint) error {
	return r.db.Create(&models.Like{UserID: userID, PostID: postID}).Error
}

func (r *LikeRepository) UnlikePost(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{}).Error
}

func (r *LikeRepository) HasLikedPost(userID, postID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Like{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&c).Error
	return c > 0, err
}

func (r *LikeRepository) CountByPostID(postID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&c).Error
	return c, err
}

// RecentLikerAvatars returns avatar URLs of the most recent likers, for the
// stacked-avatar strip under a feed post.
func (r *LikeRepository) RecentLikerAvatars(postID uint, limit int) ([]string, error) {
	var likes []models.Like
	err := r.db.Where("post_id = ?", postID).Preload("User").
		Order("created_at DESC").Limit(limit).Find(&likes).Error
	if err != nil {
		return nil, err
	}
	avatars := make([]string, 0, len(likes))
	for _, l := range likes {
		avatars = append(avatars, l.User.AvatarURL)
	}
	return avatars, nil
}

func (r *LikeRepository) LikeComment(userID, commentID uint) error {
	return r.db.Create(&models.CommentLike{UserID: userID, CommentID: commentID}).Error
}

func (r *LikeRepository) UnlikeComment(userID, commentID uint) error {
	return r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).Delete(&models.CommentLike{}).Error
}

func (r *LikeRepository) HasLikedComment(userID, commentID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.CommentLike{}).Where("user_id = ? AND comment_id = ?", userID, commentID).Count(&c).Error
	return c > 0, err
}

func (r *LikeRepository) CountByCommentID(commentID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&c).Error
	return c, err
}
