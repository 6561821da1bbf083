package session

import (
	"sync"
	"time"

	"codeberg.org/asklavinia/server/internal/costs"
	"github.com/google/uuid"
)

const (
	SessionExpiryDuration = 24 * time.Hour
	CleanupInterval       = 1 * time.Hour
)

type managedSession struct {
	session      *Session
	lastActivity time.Time
}

// tracks per-UI-session state, creating sessions on first use and
// discarding them after a period of inactivity
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*managedSession
	engine   Engine
	costs    *costs.Table
	log      Recorder
	stopChan chan struct{}
}

// creates a new session manager
func NewManager(engine Engine, table *costs.Table, log Recorder) *Manager {
	m := &Manager{
		sessions: make(map[string]*managedSession),
		engine:   engine,
		costs:    table,
		log:      log,
		stopChan: make(chan struct{}),
	}

	// start cleanup goroutine
	go m.cleanupExpiredSessions()

	return m
}

// creates a new session and returns its ID
func (m *Manager) CreateSession() (string, *Session) {
	sessionID := uuid.NewString()
	session := NewSession(m.engine, m.costs, m.log)

	m.mu.Lock()
	m.sessions[sessionID] = &managedSession{
		session:      session,
		lastActivity: time.Now(),
	}
	m.mu.Unlock()

	return sessionID, session
}

// retrieves a session by ID, refreshing its activity time
func (m *Manager) GetSession(sessionID string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	managed, exists := m.sessions[sessionID]
	if !exists {
		return nil, false
	}

	if time.Since(managed.lastActivity) > SessionExpiryDuration {
		delete(m.sessions, sessionID)
		return nil, false
	}

	managed.lastActivity = time.Now()

	return managed.session, true
}

// returns the number of active sessions
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// periodically removes expired sessions
func (m *Manager) cleanupExpiredSessions() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.removeExpiredSessions()
		case <-m.stopChan:
			return
		}
	}
}

// removes all expired sessions
func (m *Manager) removeExpiredSessions() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	for id, managed := range m.sessions {
		if now.Sub(managed.lastActivity) > SessionExpiryDuration {
			delete(m.sessions, id)
		}
	}
}

// stops the cleanup goroutine
func (m *Manager) Stop() {
	close(m.stopChan)
}
