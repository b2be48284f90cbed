package models

import (
	"time"

	"spotter/internal/domain"
)

// FriendRequest is the single persisted row behind the derived relation
// between two users: pending (IsAccepted=false), friends (IsAccepted=true),
// or no relation (row absent). Refusal and unfriending delete the row, so
// there is no soft delete here.
type FriendRequest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FromID     uint      `gorm:"not null;index:idx_friend_pair,unique" json:"from_id"`
	ToID       uint      `gorm:"not null;index:idx_friend_pair,unique" json:"to_id"`
	IsAccepted bool      `gorm:"not null;default:false" json:"is_accepted"`
	CreatedAt  time.Time `json:"created_at"`

	From User `gorm:"foreignKey:FromID" json:"-"`
	To   User `gorm:"foreignKey:ToID" json:"-"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}

func (f *FriendRequest) Edge() domain.RequestEdge {
	return domain.RequestEdge{FromID: f.FromID, ToID: f.ToID, IsAccepted: f.IsAccepted}
}
