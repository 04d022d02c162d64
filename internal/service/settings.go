package service

import (
	"context"
	"errors"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/locale"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
)

var ErrSettingsNotFound = errors.New("no saved settings")

// SettingsService manages the generator options a user has saved.
type SettingsService struct {
	repo SettingsStore
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo SettingsStore) *SettingsService {
	return &SettingsService{repo: repo}
}

// DefaultSettings is what a user without saved settings sees.
func DefaultSettings() model.SettingsResponse {
	opts := crypto.DefaultOptions()
	return model.SettingsResponse{
		Length:    opts.Length,
		Uppercase: opts.Uppercase,
		Lowercase: opts.Lowercase,
		Numbers:   opts.Numbers,
		Symbols:   opts.Symbols,
		Readable:  opts.Readable,
		Locale:    locale.Default,
	}
}

// Get returns the saved settings of a user, or DefaultSettings when none exist.
func (s *SettingsService) Get(ctx context.Context, userID int64) (model.SettingsResponse, error) {
	saved, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return DefaultSettings(), nil
		}
		return model.SettingsResponse{}, err
	}
	return settingsResponse(saved), nil
}

// Save validates and stores a user's settings. A configuration that selects
// no character class is rejected, since it could never generate a password.
func (s *SettingsService) Save(ctx context.Context, userID int64, req model.SettingsRequest) (model.SettingsResponse, error) {
	if err := validateStruct(req); err != nil {
		return model.SettingsResponse{}, err
	}
	if crypto.Pool(OptionsFromSettings(req)) == "" {
		return model.SettingsResponse{}, crypto.ErrEmptyPool
	}
	if req.Locale == "" {
		req.Locale = locale.Default
	}

	saved := &model.Settings{
		UserID:    userID,
		Length:    req.Length,
		Uppercase: req.Uppercase,
		Lowercase: req.Lowercase,
		Numbers:   req.Numbers,
		Symbols:   req.Symbols,
		Readable:  req.Readable,
		Locale:    req.Locale,
	}
	if err := s.repo.Save(ctx, saved); err != nil {
		return model.SettingsResponse{}, err
	}

	return s.Get(ctx, userID)
}

// Reset deletes a user's saved settings.
func (s *SettingsService) Reset(ctx context.Context, userID int64) error {
	err := s.repo.Delete(ctx, userID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return ErrSettingsNotFound
	}
	return err
}

// OptionsFromSettings converts a settings request into generator options.
func OptionsFromSettings(req model.SettingsRequest) crypto.GeneratorOptions {
	return crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: req.Uppercase,
		Lowercase: req.Lowercase,
		Numbers:   req.Numbers,
		Symbols:   req.Symbols,
		Readable:  req.Readable,
	}
}

func settingsResponse(s *model.Settings) model.SettingsResponse {
	return model.SettingsResponse{
		Length:    s.Length,
		Uppercase: s.Uppercase,
		Lowercase: s.Lowercase,
		Numbers:   s.Numbers,
		Symbols:   s.Symbols,
		Readable:  s.Readable,
		Locale:    s.Locale,
		UpdatedAt: s.UpdatedAt,
	}
}
