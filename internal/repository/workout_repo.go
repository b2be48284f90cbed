package repository

import (
	"errors"
	"time"

	"spotter/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Upsert writes the status for one calendar day. Posting a second proof photo
// the same day, or re-marking a rest day, overwrites rather than duplicating.
func (r *WorkoutRepository) Upsert(userID uint, date time.Time, status string) error {
	day := date.Truncate(24 * time.Hour)
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&models.WorkoutHistory{UserID: userID, Date: day, Status: status}).Error
}

func (r *WorkoutRepository) GetByDate(userID uint, date time.Time) (*models.WorkoutHistory, error) {
	var w models.WorkoutHistory
	err := r.db.Where("user_id = ? AND date = ?", userID, date.Truncate(24*time.Hour)).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListMonth returns the calendar cells for one month.
func (r *WorkoutRepository) ListMonth(userID uint, year int, month time.Month) ([]models.WorkoutHistory, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	var list []models.WorkoutHistory
	err := r.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").Find(&list).Error
	return list, err
}
