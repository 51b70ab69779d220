package client

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/pkg/token"
)

// Session is the client-resident admin authentication token.
type Session struct {
	Token     string    `json:"token"`
	User      string    `json:"user"`
	StartedAt time.Time `json:"startedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

var ErrInvalidCredentials = errors.New("invalid credentials")

// Storage persists the serialized session for the lifetime of the
// browsing session. Implementations must tolerate being cleared
// underneath the manager.
type Storage interface {
	Load() ([]byte, bool)
	Save(data []byte)
	Clear()
}

// MemoryStorage is the default session-scoped store.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
	ok   bool
}

func (m *MemoryStorage) Load() ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, m.ok
}

func (m *MemoryStorage) Save(data []byte) {
	m.mu.Lock()
	m.data, m.ok = data, true
	m.mu.Unlock()
}

func (m *MemoryStorage) Clear() {
	m.mu.Lock()
	m.data, m.ok = nil, false
	m.mu.Unlock()
}

// GuardDecision is the outcome of the admin route guard.
type GuardDecision int

const (
	GuardAllow GuardDecision = iota
	GuardRedirectLogin
	GuardRedirectCanonical
)

// SessionManager owns login, logout and the route guard for the admin
// surface. The configured slug is obfuscation only, never a security
// boundary.
type SessionManager struct {
	expectedUser string
	expectedPass string
	tokens       *token.Service
	slug         string
	storage      Storage
	now          func() time.Time
}

func NewSessionManager(expectedUser, expectedPass string, ttl time.Duration, slug string, storage Storage) *SessionManager {
	if storage == nil {
		storage = &MemoryStorage{}
	}
	return &SessionManager{
		expectedUser: expectedUser,
		expectedPass: expectedPass,
		// Per-instance signing secret: tokens are opaque to everyone
		// and die with the session scope.
		tokens:  token.New(uuid.NewString(), ttl),
		slug:    slug,
		storage: storage,
		now:     time.Now,
	}
}

// Login mints and persists a session when the pair matches.
func (m *SessionManager) Login(username, password string) (Session, error) {
	if username != m.expectedUser || password != m.expectedPass {
		return Session{}, ErrInvalidCredentials
	}

	tok, err := m.tokens.Generate(username)
	if err != nil {
		return Session{}, err
	}

	started := m.now()
	session := Session{
		Token:     tok,
		User:      username,
		StartedAt: started,
		ExpiresAt: started.Add(m.tokens.TTL()),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return Session{}, err
	}
	m.storage.Save(data)

	return session, nil
}

// Current returns the stored session if it is well-formed and not yet
// expired; anything else is purged and reads as absent.
func (m *SessionManager) Current() (Session, bool) {
	data, ok := m.storage.Load()
	if !ok || len(data) == 0 {
		return Session{}, false
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil || session.Token == "" || session.ExpiresAt.IsZero() {
		m.storage.Clear()
		return Session{}, false
	}
	if !m.now().Before(session.ExpiresAt) {
		m.storage.Clear()
		return Session{}, false
	}

	return session, true
}

func (m *SessionManager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

func (m *SessionManager) Logout() {
	m.storage.Clear()
}

// Guard evaluates an admin route request carrying the given slug
// segment ("" when the bare admin path was hit). Redirect targets never
// reveal the expected slug to an unauthenticated caller.
func (m *SessionManager) Guard(slug string) (GuardDecision, string) {
	if !m.IsAuthenticated() {
		return GuardRedirectLogin, "/login"
	}
	if m.slug != "" && slug == "" {
		return GuardRedirectCanonical, "/admin/" + m.slug
	}
	if m.slug != "" && slug != m.slug {
		return GuardRedirectLogin, "/login"
	}
	return GuardAllow, ""
}
