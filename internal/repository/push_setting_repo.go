package repository

import (
	"errors"

	"spotter/internal/models"

	"gorm.io/gorm"
)

type PushSettingRepository struct {
	db *gorm.DB
}

func NewPushSettingRepository(db *gorm.DB) *PushSettingRepository {
	return &PushSettingRepository{db: db}
}

// GetByUserID returns the user's push setting, or nil when none exists yet.
func (r *PushSettingRepository) GetByUserID(userID uint) (*models.PushSetting, error) {
	var p models.PushSetting
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PushSettingRepository) Create(p *models.PushSetting) error {
	return r.db.Create(p).Error
}

func (r *PushSettingRepository) Update(p *models.PushSetting) error {
	return r.db.Save(p).Error
}

// UpdateToken writes just the token column (rotation, clear, logout sentinel).
func (r *PushSettingRepository) UpdateToken(userID uint, token string) error {
	return r.db.Model(&models.PushSetting{}).Where("user_id = ?", userID).
		Update("token", token).Error
}
