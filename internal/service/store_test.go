package service

import (
	"context"
	"sync"
	"time"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
)

// memUsers is an in-memory UserStore with the repository's error semantics.
type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]model.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[int64]model.User)}
}

func (m *memUsers) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.byID[user.ID] = *user
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

// memSettings is an in-memory SettingsStore. err, when set, is returned by
// every call.
type memSettings struct {
	mu     sync.Mutex
	byUser map[int64]model.Settings
	err    error
}

func newMemSettings() *memSettings {
	return &memSettings{byUser: make(map[int64]model.Settings)}
}

func (m *memSettings) Save(_ context.Context, s *model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	saved := *s
	saved.UpdatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.byUser[s.UserID] = saved
	return nil
}

func (m *memSettings) GetByUser(_ context.Context, userID int64) (*model.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.byUser[userID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	return &s, nil
}

func (m *memSettings) Delete(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byUser[userID]; !ok {
		return repository.ErrSettingsNotFound
	}
	delete(m.byUser, userID)
	return nil
}

var (
	_ UserStore     = (*repository.UserRepository)(nil)
	_ SettingsStore = (*repository.SettingsRepository)(nil)
)
