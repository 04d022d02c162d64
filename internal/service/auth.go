package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles authentication business logic.
type AuthService struct {
	repo      UserStore
	settings  SettingsStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService. Sessions carry the locale from
// settings; a nil settings store issues sessions without one.
func NewAuthService(repo UserStore, settings SettingsStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		settings:  settings,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account and returns an auth token.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if err := validateStruct(req); err != nil {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:    req.Email,
		AuthHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}
	user.CreatedAt = time.Now().UTC()

	return s.issue(ctx, user)
}

// Login authenticates a user and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateStruct(req); err != nil {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	lang, err := s.savedLocale(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return userResponse(user, lang), nil
}

// issue signs a session token for user carrying their saved locale.
func (s *AuthService) issue(ctx context.Context, user *model.User) (model.AuthResponse, error) {
	lang, err := s.savedLocale(ctx, user.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}

	token, err := crypto.IssueToken(crypto.Session{UserID: user.ID, Locale: lang}, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, fmt.Errorf("signing token: %w", err)
	}
	return model.AuthResponse{Token: token, User: userResponse(user, lang)}, nil
}

// savedLocale returns the locale from the user's saved settings, or "" when
// nothing is saved.
func (s *AuthService) savedLocale(ctx context.Context, userID int64) (string, error) {
	if s.settings == nil {
		return "", nil
	}
	saved, err := s.settings.GetByUser(ctx, userID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading saved locale: %w", err)
	}
	return saved.Locale, nil
}

func userResponse(user *model.User, lang string) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Locale:    lang,
		CreatedAt: user.CreatedAt,
	}
}
