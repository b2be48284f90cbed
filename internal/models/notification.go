package models

import (
	"time"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FromID    *uint     `gorm:"index" json:"from_id"` // nil for system events
	ToID      uint      `gorm:"not null;index" json:"to_id"`
	Type      string    `gorm:"size:32;not null;index" json:"type"`
	Data      string    `gorm:"type:text" json:"data"` // JSON payload: post_id, excerpt, is_accepted
	CreatedAt time.Time `json:"created_at"`

	From *User `gorm:"foreignKey:FromID" json:"from,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
