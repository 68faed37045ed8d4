// Package session holds the mock authentication flow: a single demo
// credential pair, a simulated network delay, and an explicit manager object
// instead of ambient global state.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gestaopub/contratos-service/internal/model"
)

var ErrInvalidCredentials = errors.New("credenciais inválidas")

const (
	demoEmail    = "admin@example.com"
	demoPassword = "admin"
)

// PersistedStore is where the session user survives between manager
// lifetimes. The default is in-memory; the interface exists so a caller can
// plug something longer-lived without the manager knowing.
type PersistedStore interface {
	Load() (model.User, bool)
	Save(user model.User)
	Clear()
}

// MemoryStore is the default PersistedStore.
type MemoryStore struct {
	mu   sync.Mutex
	user *model.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *MemoryStore) Save(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// ProfileUpdate carries the editable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Manager owns the current session user.
type Manager struct {
	persisted PersistedStore
	delay     time.Duration
	log       zerolog.Logger

	mu   sync.Mutex
	user *model.User
}

func NewManager(persisted PersistedStore, delay time.Duration, log zerolog.Logger) *Manager {
	if persisted == nil {
		persisted = NewMemoryStore()
	}
	return &Manager{persisted: persisted, delay: delay, log: log}
}

// Restore loads a previously persisted user, if any.
func (m *Manager) Restore() {
	user, ok := m.persisted.Load()
	if !ok {
		return
	}
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	m.log.Info().Str("email", user.Email).Msg("session restored")
}

// Login checks the demo credentials after the simulated delay. The context
// lets a caller abandon the wait.
func (m *Manager) Login(ctx context.Context, email, password string) (model.User, error) {
	if err := m.wait(ctx); err != nil {
		return model.User{}, err
	}
	if email != demoEmail || password != demoPassword {
		return model.User{}, ErrInvalidCredentials
	}

	user := model.User{
		ID:    "1",
		Name:  "Admin User",
		Email: demoEmail,
		Role:  model.RoleAdmin,
	}
	m.setUser(user)
	m.log.Info().Str("email", user.Email).Msg("login")
	return user, nil
}

// Register creates a throwaway account and logs it in.
func (m *Manager) Register(ctx context.Context, name, email, password string) (model.User, error) {
	if err := m.wait(ctx); err != nil {
		return model.User{}, err
	}
	if name == "" || email == "" || password == "" {
		return model.User{}, fmt.Errorf("%w: campos obrigatórios ausentes", ErrInvalidCredentials)
	}

	user := model.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  model.RoleUser,
	}
	m.setUser(user)
	m.log.Info().Str("email", user.Email).Msg("register")
	return user, nil
}

// UpdateProfile merges the non-nil fields into the current user.
func (m *Manager) UpdateProfile(ctx context.Context, update ProfileUpdate) (model.User, error) {
	if err := m.wait(ctx); err != nil {
		return model.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return model.User{}, errors.New("no active session")
	}
	if update.Name != nil {
		m.user.Name = *update.Name
	}
	if update.Email != nil {
		m.user.Email = *update.Email
	}
	if update.AvatarURL != nil {
		m.user.AvatarURL = *update.AvatarURL
	}
	m.persisted.Save(*m.user)
	return *m.user, nil
}

// Current returns the logged-in user, if any.
func (m *Manager) Current() (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return model.User{}, false
	}
	return *m.user, true
}

// Logout clears the session and the persisted copy.
func (m *Manager) Logout() {
	m.Clear()
	m.log.Info().Msg("logout")
}

// Clear tears the session down without logging.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
	m.persisted.Clear()
}

func (m *Manager) setUser(user model.User) {
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	m.persisted.Save(user)
}

// wait simulates the original's fixed network latency on auth calls.
func (m *Manager) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
