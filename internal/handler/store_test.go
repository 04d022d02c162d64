package handler

import (
	"context"
	"sync"
	"time"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
)

type memUsers struct {
	mu   sync.Mutex
	rows []model.User
}

func (m *memUsers) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *user)
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 1 || int(id) > len(m.rows) {
		return nil, repository.ErrUserNotFound
	}
	u := m.rows[id-1]
	return &u, nil
}

type memSettings struct {
	mu     sync.Mutex
	byUser map[int64]model.Settings
}

func newMemSettings() *memSettings {
	return &memSettings{byUser: make(map[int64]model.Settings)}
}

func (m *memSettings) Save(_ context.Context, s *model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := *s
	saved.UpdatedAt = time.Now().UTC()
	m.byUser[s.UserID] = saved
	return nil
}

func (m *memSettings) GetByUser(_ context.Context, userID int64) (*model.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byUser[userID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	return &s, nil
}

func (m *memSettings) Delete(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byUser[userID]; !ok {
		return repository.ErrSettingsNotFound
	}
	delete(m.byUser, userID)
	return nil
}
