package repository

import (
	"spotter/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(p *models.Post) error {
	return r.db.Create(p).Error
}

func (r *PostRepository) GetByID(id uint) (*models.Post, error) {
	var p models.Post
	if err := r.db.Preload("User").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Delete(id, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Post{})
	return res.RowsAffected, res.Error
}

// ListByUserIDs returns posts by any of the given users, newest first.
// Feeds the home timeline (self + friends).
func (r *PostRepository) ListByUserIDs(userIDs []uint, limit, offset int) ([]models.Post, error) {
	var list []models.Post
	err := r.db.Where("user_id IN ?", userIDs).Preload("User").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByUserID(userID uint, limit, offset int) ([]models.Post, error) {
	return r.ListByUserIDs([]uint{userID}, limit, offset)
}
