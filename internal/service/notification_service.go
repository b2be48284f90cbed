package service

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"spotter/internal/domain"
	"spotter/internal/models"
	"spotter/internal/repository"
	"spotter/internal/ws"
)

// NotificationService is the single dispatch point for every alert in the app:
// it writes the notification row, pushes it on the recipient's realtime feed,
// and delivers an FCM push when the recipient opted into the category.
type NotificationService struct {
	repo     *repository.NotificationRepository
	userRepo *repository.UserRepository
	pushRepo *repository.PushSettingRepository
	fcm      *FCMService
	hub      *ws.Hub
}

func NewNotificationService(
	repo *repository.NotificationRepository,
	userRepo *repository.UserRepository,
	pushRepo *repository.PushSettingRepository,
	fcm *FCMService,
	hub *ws.Hub,
) *NotificationService {
	return &NotificationService{repo: repo, userRepo: userRepo, pushRepo: pushRepo, fcm: fcm, hub: hub}
}

// Notify persists the notification and fans it out. The row write is the only
// call that can fail; feed and push delivery are best effort.
func (s *NotificationService) Notify(toID uint, fromID *uint, notifType, title, body string, data map[string]interface{}) error {
	var dataJSON string
	if data != nil {
		b, _ := json.Marshal(data)
		dataJSON = string(b)
	}
	n := &models.Notification{
		FromID: fromID,
		ToID:   toID,
		Type:   notifType,
		Data:   dataJSON,
	}
	if err := s.repo.Create(n); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.Publish(toID, ws.Event{Type: ws.EventNotification, Payload: n})
	}
	s.sendPush(toID, notifType, title, body, data)
	return nil
}

// sendPush delivers via FCM, filtered by the recipient's granted categories.
// Skipped when the token is absent, cleared, or the logout sentinel.
func (s *NotificationService) sendPush(toID uint, notifType, title, body string, data map[string]interface{}) {
	if s.fcm == nil || s.pushRepo == nil {
		return
	}
	setting, err := s.pushRepo.GetByUserID(toID)
	if err != nil || setting == nil {
		return
	}
	if setting.Token == "" || setting.Token == domain.PushTokenLoggedOut {
		return
	}
	if !setting.IsGranted(notifType) {
		return
	}
	_ = s.fcm.SendToToken(context.Background(), setting.Token, notifType, title, body, data)
}

func (s *NotificationService) NotifyPoke(to uint, from *models.User) error {
	return s.Notify(to, &from.ID, domain.NotificationPoke,
		"Poke", from.DisplayName()+" poked you. Time to work out!", nil)
}

func (s *NotificationService) NotifyFriendRequest(to uint, from *models.User) error {
	return s.Notify(to, &from.ID, domain.NotificationFriend,
		"Friend request", from.DisplayName()+" wants to be your workout buddy",
		map[string]interface{}{"is_accepted": false})
}

func (s *NotificationService) NotifyFriendAccepted(to uint, from *models.User) error {
	return s.Notify(to, &from.ID, domain.NotificationFriend,
		"Friend request accepted", from.DisplayName()+" accepted your friend request",
		map[string]interface{}{"is_accepted": true})
}

func (s *NotificationService) NotifyPostLike(to uint, from *models.User, postID uint) error {
	return s.Notify(to, &from.ID, domain.NotificationLike,
		"New like", from.DisplayName()+" liked your workout",
		map[string]interface{}{"post_id": postID})
}

func (s *NotificationService) NotifyComment(to uint, from *models.User, postID uint, body string) error {
	return s.Notify(to, &from.ID, domain.NotificationComment,
		"New comment", from.DisplayName()+": "+Excerpt(body),
		map[string]interface{}{"post_id": postID, "excerpt": Excerpt(body)})
}

func (s *NotificationService) NotifyCommentLike(to uint, from *models.User, postID uint) error {
	return s.Notify(to, &from.ID, domain.NotificationCommentLike,
		"New like", from.DisplayName()+" liked your comment",
		map[string]interface{}{"post_id": postID})
}

func (s *NotificationService) NotifyMention(to uint, from *models.User, postID uint, body string) error {
	return s.Notify(to, &from.ID, domain.NotificationMention,
		"You were mentioned", from.DisplayName()+" mentioned you: "+Excerpt(body),
		map[string]interface{}{"post_id": postID, "excerpt": Excerpt(body)})
}

const excerptLen = 80

// Excerpt shortens a comment body for notification payloads.
func Excerpt(body string) string {
	if utf8.RuneCountInString(body) <= excerptLen {
		return body
	}
	runes := []rune(body)
	return string(runes[:excerptLen]) + "…"
}

// IsUnread reports whether the newest notification is past the user's read
// watermark. A nil watermark means nothing was ever checked, so anything counts.
func IsUnread(latest, checkedAt *time.Time) bool {
	if latest == nil {
		return false
	}
	if checkedAt == nil {
		return true
	}
	return latest.After(*checkedAt)
}
