package models

import (
	"strings"
	"time"
)

// PushSetting is the one-per-user push registration: the current device token
// (or the logout sentinel) and the notification categories the user opted into.
type PushSetting struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Token  string `gorm:"size:512" json:"-"`
	// GrantedTypes is a comma-separated set of notification type names.
	GrantedTypes string    `gorm:"size:255" json:"granted_types"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (PushSetting) TableName() string {
	return "push_settings"
}

func (p *PushSetting) Granted() []string {
	if p.GrantedTypes == "" {
		return nil
	}
	return strings.Split(p.GrantedTypes, ",")
}

func (p *PushSetting) SetGranted(types []string) {
	p.GrantedTypes = strings.Join(types, ",")
}

func (p *PushSetting) IsGranted(notifType string) bool {
	for _, t := range p.Granted() {
		if t == notifType {
			return true
		}
	}
	return false
}
