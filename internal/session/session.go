// Package session implements the demo auth flows: login, register, logout
// and preference updates against an in-memory user list. At most one session
// is active; its snapshot is persisted under the currentUser key.
package session

import (
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"techstore/internal/domain"
	"techstore/internal/storage"
)

var (
	// ErrInvalidCredentials is returned on any login mismatch. It never says
	// which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when a registration email already exists.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrNotLoggedIn is returned by operations that need an active session.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrNameRequired is returned when a registration has a blank name.
	ErrNameRequired = errors.New("name required")
	// ErrEmailInvalid is returned when a registration email does not parse.
	ErrEmailInvalid = errors.New("valid email required")
	// ErrPasswordTooShort is returned when a registration password is under
	// the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordMinLength = 6

// preferenceApplier receives the logged-in user's saved display settings.
type preferenceApplier interface {
	SetTheme(ctx context.Context, theme domain.Theme) error
	SetLanguage(ctx context.Context, lang domain.Language) error
}

// Manager owns the user list and the current session.
type Manager struct {
	mu       sync.Mutex
	users    []domain.User
	nextID   int
	current  *domain.Session
	store    storage.Store
	settings preferenceApplier
	logger   *log.Logger
	now      func() time.Time
}

func New(users []domain.User, store storage.Store, settings preferenceApplier, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	cp := make([]domain.User, len(users))
	copy(cp, users)
	nextID := 1
	for _, u := range cp {
		if u.ID >= nextID {
			nextID = u.ID + 1
		}
	}
	return &Manager{
		users:    cp,
		nextID:   nextID,
		store:    store,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// Login matches email and password exactly against the user list. On success
// the session becomes a detached snapshot of the user's public fields, the
// snapshot is persisted, and the user's saved theme and language are applied.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	m.mu.Lock()
	var match *domain.User
	for i := range m.users {
		if m.users[i].Email == email && m.users[i].Password == password {
			match = &m.users[i]
			break
		}
	}
	if match == nil {
		m.mu.Unlock()
		return nil, ErrInvalidCredentials
	}
	sess := domain.SessionFor(*match)
	m.current = &sess
	m.persistLocked(ctx)
	prefs := match.Preferences
	m.mu.Unlock()

	if m.settings != nil {
		if err := m.settings.SetTheme(ctx, prefs.Theme); err != nil {
			m.logger.Printf("session: apply theme: %v", err)
		}
		if err := m.settings.SetLanguage(ctx, prefs.Language); err != nil {
			m.logger.Printf("session: apply language: %v", err)
		}
	}
	m.logger.Printf("session: login email=%s", email)
	out := sess
	return &out, nil
}

// Register appends a new user and logs it in. The duplicate check is a
// case-sensitive exact match on email, preserving the original storefront's
// behavior.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*domain.Session, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}
	if len(password) < passwordMinLength {
		return nil, ErrPasswordTooShort
	}

	m.mu.Lock()
	for _, u := range m.users {
		if u.Email == email {
			m.mu.Unlock()
			return nil, ErrEmailTaken
		}
	}
	user := domain.User{
		ID:          m.nextID,
		Email:       email,
		Password:    password,
		Name:        name,
		Role:        "user",
		CreatedAt:   m.now().UTC().Format("2006-01-02"),
		Preferences: domain.DefaultPreferences(),
	}
	m.nextID++
	m.users = append(m.users, user)
	m.mu.Unlock()

	return m.Login(ctx, email, password)
}

// Logout clears the session in memory and in storage.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	if err := m.store.Remove(ctx, storage.KeyCurrentUser); err != nil {
		m.logger.Printf("session: snapshot not removed: %v", err)
	}
}

// IsLoggedIn reports whether a session is active, lazily rehydrating the
// snapshot from storage. The read can populate the in-memory session as a
// side effect after a restart.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rehydrateLocked(ctx)
}

// Current returns the active session snapshot, or nil when anonymous. The
// rehydrate and the copy happen under one lock hold, so a concurrent Logout
// can not clear the session between them.
func (m *Manager) Current(ctx context.Context) *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.rehydrateLocked(ctx) {
		return nil
	}
	out := *m.current
	return &out
}

// rehydrateLocked loads the persisted snapshot if no session is active.
// Caller holds the lock.
func (m *Manager) rehydrateLocked(ctx context.Context) bool {
	if m.current != nil {
		return true
	}
	var sess domain.Session
	if err := storage.ReadJSON(ctx, m.store, storage.KeyCurrentUser, &sess); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			m.logger.Printf("session: rehydrate: %v", err)
		}
		return false
	}
	m.current = &sess
	return true
}

// PreferencesPatch carries a partial preference update; nil fields are left
// unchanged.
type PreferencesPatch struct {
	Theme         *domain.Theme
	Language      *domain.Language
	Notifications *bool
}

// UpdatePreferences merges the patch into the session preferences and writes
// through to both the persisted snapshot and the backing user record.
func (m *Manager) UpdatePreferences(ctx context.Context, patch PreferencesPatch) (*domain.Session, error) {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return nil, ErrNotLoggedIn
	}
	prefs := m.current.Preferences
	if patch.Theme != nil {
		prefs.Theme = *patch.Theme
	}
	if patch.Language != nil {
		prefs.Language = *patch.Language
	}
	if patch.Notifications != nil {
		prefs.Notifications = *patch.Notifications
	}
	m.current.Preferences = prefs
	for i := range m.users {
		if m.users[i].ID == m.current.UserID {
			m.users[i].Preferences = prefs
			break
		}
	}
	m.persistLocked(ctx)
	out := *m.current
	m.mu.Unlock()
	return &out, nil
}

// persistLocked writes the session snapshot through. Caller holds the lock.
func (m *Manager) persistLocked(ctx context.Context) {
	if err := storage.WriteJSON(ctx, m.store, storage.KeyCurrentUser, m.current); err != nil {
		m.logger.Printf("session: snapshot not persisted: %v", err)
	}
}
