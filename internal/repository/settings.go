package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vaultpass/passgen/internal/model"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository handles persistence of saved generator settings.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Save inserts or replaces the settings row of s.UserID.
func (r *SettingsRepository) Save(ctx context.Context, s *model.Settings) error {
	query := `
	INSERT INTO generator_settings (user_id, length, uppercase, lowercase, numbers, symbols, readable, locale)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		length    = VALUES(length),
		uppercase = VALUES(uppercase),
		lowercase = VALUES(lowercase),
		numbers   = VALUES(numbers),
		symbols   = VALUES(symbols),
		readable  = VALUES(readable),
		locale    = VALUES(locale)`

	_, err := r.db.ExecContext(ctx, query,
		s.UserID, s.Length, s.Uppercase, s.Lowercase, s.Numbers, s.Symbols, s.Readable, s.Locale,
	)
	return err
}

// GetByUser retrieves the saved settings of a user.
func (r *SettingsRepository) GetByUser(ctx context.Context, userID int64) (*model.Settings, error) {
	query := `SELECT user_id, length, uppercase, lowercase, numbers, symbols, readable, locale, updated_at
		FROM generator_settings WHERE user_id = ?`

	s := &model.Settings{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&s.UserID, &s.Length, &s.Uppercase, &s.Lowercase, &s.Numbers, &s.Symbols, &s.Readable, &s.Locale, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	return s, nil
}

// Delete removes the saved settings of a user.
func (r *SettingsRepository) Delete(ctx context.Context, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM generator_settings WHERE user_id = ?`, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}
	return nil
}
