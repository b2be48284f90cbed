package repository

import (
	"errors"
	"time"

	"spotter/internal/domain"
	"spotter/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepository) ListByUserID(userID uint, limit, offset int) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("to_id = ?", userID).Preload("From").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

// LatestCreatedAt returns the timestamp of the newest notification for the
// user, or nil when there is none. Compared against the user's watermark to
// derive the unread badge.
func (r *NotificationRepository) LatestCreatedAt(userID uint) (*time.Time, error) {
	var n models.Notification
	err := r.db.Where("to_id = ?", userID).Order("created_at DESC").First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n.CreatedAt, nil
}

// LatestPokeAt returns when from last poked to, or nil if never. Drives the
// poke cooldown.
func (r *NotificationRepository) LatestPokeAt(fromID, toID uint) (*time.Time, error) {
	var n models.Notification
	err := r.db.Where("from_id = ? AND to_id = ? AND type = ?", fromID, toID, domain.NotificationPoke).
		Order("created_at DESC").First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n.CreatedAt, nil
}
