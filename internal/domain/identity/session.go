package identity

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAlreadyAuthenticated = errors.New("a session is already active")
	ErrNoActiveSession      = errors.New("no active session")
	// ErrAccountDisabled is returned when credentials match a disabled
	// user. Callers may offer ReactivateAndLogin as the recovery path.
	ErrAccountDisabled = errors.New("account is disabled")
)

// Session is the single authenticated slot. The user snapshot is the one
// read at login time; a later Disable does not invalidate it.
type Session struct {
	ID      uuid.UUID
	User    *User
	LoginAt time.Time
}

// SessionManager tracks at most one active session. It starts logged out
// and has no implicit teardown; construct one per process and pass it to
// callers explicitly.
type SessionManager struct {
	users UserRepository

	mu      sync.Mutex
	current *Session
}

func NewSessionManager(users UserRepository) *SessionManager {
	return &SessionManager{users: users}
}

// Login matches email and password exactly against the users collection.
// While a session is active any further login is rejected. Credentials
// matching a disabled user report ErrAccountDisabled and leave the slot
// empty.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		return nil, ErrAlreadyAuthenticated
	}
	u, err := m.users.GetByCredentials(ctx, email, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.Enabled {
		return nil, ErrAccountDisabled
	}
	m.current = &Session{ID: uuid.New(), User: u, LoginAt: time.Now()}
	return m.current, nil
}

// ReactivateAndLogin is the recovery path for a disabled account: the
// caller re-collects credentials, and a match re-enables the user,
// persists the flag and opens the session. A mismatch changes nothing.
func (m *SessionManager) ReactivateAndLogin(ctx context.Context, email, password string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		return nil, ErrAlreadyAuthenticated
	}
	u, err := m.users.GetByCredentials(ctx, email, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.Enabled {
		u.Enabled = true
		if err := m.users.Update(ctx, u); err != nil {
			return nil, err
		}
	}
	m.current = &Session{ID: uuid.New(), User: u, LoginAt: time.Now()}
	return m.current, nil
}

// Logout clears the slot. Logged out, it reports ErrNoActiveSession;
// callers treat that as informational.
func (m *SessionManager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ErrNoActiveSession
	}
	m.current = nil
	return nil
}

// Current returns the active session, if any.
func (m *SessionManager) Current() (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.current != nil
}
