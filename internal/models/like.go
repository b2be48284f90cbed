package models

import (
	"time"
)

type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_like_user_post,unique" json:"user_id"`
	PostID    uint      `gorm:"not null;index:idx_like_user_post,unique" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Like) TableName() string {
	return "likes"
}

type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_clike_user_comment,unique" json:"user_id"`
	CommentID uint      `gorm:"not null;index:idx_clike_user_comment,unique" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
