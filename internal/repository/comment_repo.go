package repository

import (
	"errors"

	"spotter/internal/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(cm *models.Comment) error {
	return r.db.Create(cm).Error
}

func (r *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	var cm models.Comment
	if err := r.db.Preload("User").First(&cm, id).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

func (r *CommentRepository) Delete(id, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Comment{})
	return res.RowsAffected, res.Error
}

func (r *CommentRepository) ListByPostID(postID uint, limit, offset int) ([]models.Comment, error) {
	var list []models.Comment
	err := r.db.Where("post_id = ?", postID).Preload("User").
		Order("created_at ASC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *CommentRepository) CountByPostID(postID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&c).Error
	return c, err
}

// LatestByPostID returns the newest comment on a post, or nil when there is
// none. Used by the feed to show a one-line preview.
func (r *CommentRepository) LatestByPostID(postID uint) (*models.Comment, error) {
	var cm models.Comment
	err := r.db.Where("post_id = ?", postID).Preload("User").
		Order("created_at DESC").First(&cm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cm, nil
}
