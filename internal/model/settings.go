package model

import "time"

// Settings is a user's saved generator configuration. Generated passwords
// are never stored, only the options that produce them.
type Settings struct {
	UserID    int64
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	Readable  bool
	Locale    string
	UpdatedAt time.Time
}

// SettingsRequest represents an update to the saved generator configuration.
type SettingsRequest struct {
	Length    int    `json:"length" validate:"min=4,max=50"`
	Uppercase bool   `json:"uppercase"`
	Lowercase bool   `json:"lowercase"`
	Numbers   bool   `json:"numbers"`
	Symbols   bool   `json:"symbols"`
	Readable  bool   `json:"readable"`
	Locale    string `json:"locale" validate:"omitempty,supported_locale"`
}

// SettingsResponse represents saved generator configuration in API responses.
type SettingsResponse struct {
	Length    int       `json:"length"`
	Uppercase bool      `json:"uppercase"`
	Lowercase bool      `json:"lowercase"`
	Numbers   bool      `json:"numbers"`
	Symbols   bool      `json:"symbols"`
	Readable  bool      `json:"readable"`
	Locale    string    `json:"locale"`
	UpdatedAt time.Time `json:"updated_at"`
}
