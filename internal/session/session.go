// Package session tracks who is signed in and which view they are on.
// The account held by a session is a cached copy; it is refreshed from
// the account repository at every navigation boundary rather than trusted
// as always-current.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/educross/educross/internal/common/errors"
	"github.com/educross/educross/internal/learning/models"
)

// Session is one signed-in identity plus its current view.
type Session struct {
	Token     string         `json:"token"`
	Account   models.Account `json:"account"`
	View      View           `json:"view"`
	CreatedAt time.Time      `json:"created_at"`
	LastSeen  time.Time      `json:"last_seen"`
}

// Manager keeps active sessions in memory and mirrors the most recent one
// to the bolt slot. The mirror may be nil (tests); everything else still
// works, sessions just don't survive a restart.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	mirror   *Mirror
}

func NewManager(mirror *Mirror) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		mirror:   mirror,
	}
}

// Start creates a session for an authenticated account, placing it on the
// role-appropriate dashboard, and mirrors it.
func (m *Manager) Start(account models.Account) (*Session, error) {
	now := time.Now()
	s := &Session{
		Token:     uuid.NewString(),
		Account:   account,
		View:      DashboardFor(account.Role),
		CreatedAt: now,
		LastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()

	if m.mirror != nil {
		if err := m.mirror.Save(s); err != nil {
			return nil, errors.Store("mirror session", err)
		}
	}
	return s, nil
}

// Get returns the session for a token.
func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

// Navigate moves the session to another view after checking the target is
// valid for the session's role. The caller is expected to refresh the
// cached account via Refresh at the same boundary.
func (m *Manager) Navigate(token string, to View) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, errors.Unauthorized("no active session")
	}
	if !to.AllowedFor(s.Account.Role) {
		return nil, errors.BadRequest("view not available for role")
	}

	s.View = to
	s.LastSeen = time.Now()
	return s, nil
}

// Refresh replaces the session's cached account copy with a fresh read
// from the repository and re-mirrors it.
func (m *Manager) Refresh(token string, account models.Account) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[token]
	if ok {
		s.Account = account
		s.LastSeen = time.Now()
	}
	m.mu.Unlock()

	if !ok {
		return nil, errors.Unauthorized("no active session")
	}
	if m.mirror != nil {
		if err := m.mirror.Save(s); err != nil {
			return nil, errors.Store("mirror session", err)
		}
	}
	return s, nil
}

// End removes the session and clears the mirror slot, returning the app
// to the unauthenticated state.
func (m *Manager) End(token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()

	if m.mirror != nil {
		if err := m.mirror.Clear(); err != nil {
			return errors.Store("clear session mirror", err)
		}
	}
	return nil
}

// Resume loads the mirrored session, if any, back into the active set.
// Called once at startup so a restart picks up where the user left off.
func (m *Manager) Resume() (*Session, error) {
	if m.mirror == nil {
		return nil, nil
	}
	s, err := m.mirror.Load()
	if err != nil {
		return nil, errors.Store("load session mirror", err)
	}
	if s == nil {
		return nil, nil
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()
	return s, nil
}
