package models

import (
	"time"
)

// WorkoutHistory is one calendar cell: a day marked done (by posting a proof
// photo) or rest (marked explicitly).
type WorkoutHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_workout_user_date,unique" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;index:idx_workout_user_date,unique" json:"date"`
	Status    string    `gorm:"size:8;not null" json:"status"` // DONE | REST
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WorkoutHistory) TableName() string {
	return "workout_history"
}
