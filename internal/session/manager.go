package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Manager holds the live sessions keyed by ID. Sessions live for the
// process lifetime.
type Manager struct {
	mu       sync.RWMutex
	deps     Deps
	sessions map[string]*Session
}

// NewManager creates an empty manager; every session shares deps.
func NewManager(deps Deps) *Manager {
	return &Manager{deps: deps, sessions: make(map[string]*Session)}
}

// Create starts a new idle session.
func (m *Manager) Create(ctx context.Context) *Session {
	s := New(uuid.NewString(), m.deps)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	if m.deps.Logger != nil {
		m.deps.Logger.Info(ctx, "Session created: %s", s.ID())
	}
	return s
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
