package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"spotter/config"
	"spotter/internal/auth"
	"spotter/internal/domain"
	"spotter/internal/models"
	"spotter/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists      = errors.New("email already registered")
	ErrUsernameExists   = errors.New("username already taken")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrInvalidCreds     = errors.New("invalid email or password")
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

func (s *AuthService) Register(email, username, password string) (*models.User, string, string, error) {
	if utf8.RuneCountInString(username) < domain.MinUsernameLen {
		return nil, "", "", ErrUsernameTooShort
	}
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, "", "", ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	_, err = s.userRepo.GetByUsername(username)
	if err == nil {
		return nil, "", "", ErrUsernameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	u := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, "", "", err
	}
	access, refresh, err := s.issueTokens(u)
	return u, access, refresh, err
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", "", ErrInvalidCreds
	}
	access, refresh, err := s.issueTokens(u)
	return u, access, refresh, err
}

func (s *AuthService) Refresh(refreshToken string) (string, string, error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", "", err
	}
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}
	return s.issueTokens(u)
}

// LoginWithGoogle finds the user by Google ID, links an existing account by
// email, or creates a fresh one with a username derived from the email prefix.
func (s *AuthService) LoginWithGoogle(googleID, email, name, picture string) (*models.User, string, string, error) {
	u, err := s.userRepo.GetByGoogleID(googleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	if u == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		u, err = s.userRepo.GetByEmail(email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			u = &models.User{
				Email:     email,
				Username:  s.uniqueUsername(email, name),
				GoogleID:  &googleID,
				AvatarURL: picture,
			}
			if err := s.userRepo.Create(u); err != nil {
				return nil, "", "", err
			}
		} else {
			u.GoogleID = &googleID
			if u.AvatarURL == "" {
				u.AvatarURL = picture
			}
			if err := s.userRepo.Update(u); err != nil {
				return nil, "", "", err
			}
		}
	}
	access, refresh, err := s.issueTokens(u)
	return u, access, refresh, err
}

func (s *AuthService) issueTokens(u *models.User) (string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// uniqueUsername turns the email prefix (or display name) into a free
// username, suffixing a counter when taken.
func (s *AuthService) uniqueUsername(email, name string) string {
	base := strings.SplitN(email, "@", 2)[0]
	if utf8.RuneCountInString(base) < domain.MinUsernameLen {
		base = strings.ReplaceAll(strings.ToLower(name), " ", "")
	}
	if utf8.RuneCountInString(base) < domain.MinUsernameLen {
		base = "user"
	}
	candidate := base
	for i := 1; ; i++ {
		_, err := s.userRepo.GetByUsername(candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}
