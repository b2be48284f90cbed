package repository

import (
	"time"

	"spotter/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByGoogleID(googleID string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("google_id = ?", googleID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

// SearchByUsername matches usernames by prefix for the add-friend screen.
func (r *UserRepository) SearchByUsername(q string, excludeID uint, limit int) ([]models.User, error) {
	var list []models.User
	err := r.db.Where("username LIKE ? AND id <> ?", q+"%", excludeID).
		Order("username ASC").Limit(limit).Find(&list).Error
	return list, err
}

// TouchNotificationCheckedAt advances the read watermark to now.
func (r *UserRepository) TouchNotificationCheckedAt(userID uint, now time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("notification_checked_at", now).Error
}
