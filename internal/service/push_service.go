package service

import (
	"errors"

	"spotter/internal/domain"
	"spotter/internal/models"
	"spotter/internal/repository"
)

var ErrUnknownNotificationType = errors.New("unknown notification type")

// PushService owns the push-token lifecycle: registration on first grant,
// rotation after reinstall, clearing on permission loss, and the logout
// sentinel. The mobile client calls SyncDevice whenever it observes the OS
// permission state (startup and return to foreground).
type PushService struct {
	repo *repository.PushSettingRepository
}

func NewPushService(repo *repository.PushSettingRepository) *PushService {
	return &PushService{repo: repo}
}

// SyncDevice reconciles the stored token with the device's current token and
// permission state and returns the resulting setting (nil when none exists).
func (s *PushService) SyncDevice(userID uint, deviceToken string, granted bool) (*models.PushSetting, error) {
	setting, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	stored := ""
	if setting != nil {
		stored = setting.Token
	}
	switch domain.ResolveTokenAction(setting != nil, stored, deviceToken, granted) {
	case domain.TokenRegister:
		setting = &models.PushSetting{UserID: userID, Token: deviceToken}
		setting.SetGranted(domain.AllNotificationTypes)
		if err := s.repo.Create(setting); err != nil {
			return nil, err
		}
	case domain.TokenRotate:
		setting.Token = deviceToken
		if err := s.repo.UpdateToken(userID, deviceToken); err != nil {
			return nil, err
		}
	case domain.TokenClear:
		// Keep the granted categories so a re-grant restores the user's choices.
		setting.Token = ""
		if err := s.repo.UpdateToken(userID, ""); err != nil {
			return nil, err
		}
	}
	return setting, nil
}

// UpdateGranted replaces the user's opted-in notification categories.
func (s *PushService) UpdateGranted(userID uint, types []string) (*models.PushSetting, error) {
	for _, t := range types {
		if !knownType(t) {
			return nil, ErrUnknownNotificationType
		}
	}
	setting, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &models.PushSetting{UserID: userID}
		setting.SetGranted(types)
		if err := s.repo.Create(setting); err != nil {
			return nil, err
		}
		return setting, nil
	}
	setting.SetGranted(types)
	if err := s.repo.Update(setting); err != nil {
		return nil, err
	}
	return setting, nil
}

// HandleLogout replaces the token with the logout sentinel so a later login
// does not mistake the stale token for a still-valid registration.
func (s *PushService) HandleLogout(userID uint) error {
	setting, err := s.repo.GetByUserID(userID)
	if err != nil || setting == nil {
		return err
	}
	return s.repo.UpdateToken(userID, domain.PushTokenLoggedOut)
}

func knownType(t string) bool {
	for _, k := range domain.AllNotificationTypes {
		if k == t {
			return true
		}
	}
	return false
}
