package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a workout-proof photo. Creating one marks the day as done in the
// owner's workout history.
type Post struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"user_id"`
	ImageURL     string         `gorm:"size:512;not null" json:"image_url"`
	ThumbnailURL string         `gorm:"size:512" json:"thumbnail_url"`
	Caption      string         `gorm:"size:500" json:"caption"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
