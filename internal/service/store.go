package service

import (
	"context"

	"github.com/vaultpass/passgen/internal/model"
)

// UserStore persists accounts. *repository.UserRepository implements it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// SettingsStore persists saved generator settings.
// *repository.SettingsRepository implements it.
type SettingsStore interface {
	Save(ctx context.Context, s *model.Settings) error
	GetByUser(ctx context.Context, userID int64) (*model.Settings, error)
	Delete(ctx context.Context, userID int64) error
}
