package services

import (
	"log"
	"sync"

	"github.com/RachitaModiTR/PlanPoker/internal/models"
)

// Store is the single source of truth for session state. Sessions are
// created lazily on first reference and live in memory only; a process
// restart loses everything. The store hands out sessions together with
// the per-session lock that serializes all mutation of that session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	session *models.Session
	mu      sync.Mutex
	lastSeq int64
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*sessionEntry),
	}
}

// GetOrCreate returns the existing session unchanged, or creates one with
// default settings and phase voting. Creation is the only place default
// settings are chosen.
func (s *Store) GetOrCreate(sessionID string, creator models.User) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[sessionID]; ok {
		return entry.session
	}

	session := models.NewSession(sessionID, "Session "+sessionID, creator.ID)
	s.sessions[sessionID] = &sessionEntry{session: session}
	log.Printf("✓ Session created: id=%s creator=%s", sessionID, creator.ID)
	return session
}

// Create stores a reserved session with an explicit name and settings,
// so both survive until the first websocket connect. The first joiner
// still picks up the moderator role. An existing id is left untouched.
func (s *Store) Create(sessionID, name string, settings models.SessionSettings) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[sessionID]; ok {
		return entry.session
	}

	session := models.NewSession(sessionID, name, "")
	session.Settings = settings
	s.sessions[sessionID] = &sessionEntry{session: session}
	log.Printf("✓ Session created: id=%s name=%q", sessionID, name)
	return session
}

// Get returns the session, or nil when no such session is stored.
func (s *Store) Get(sessionID string) *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.sessions[sessionID]; ok {
		return entry.session
	}
	return nil
}

// Delete removes the session. The only caller is session reset.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// withSession runs fn while holding the session's lock, so read-modify-write
// sequences on a single session are atomic. Events for different sessions
// do not block each other. Returns false when the session does not exist.
func (s *Store) withSession(sessionID string, fn func(*models.Session, *int64)) bool {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	fn(entry.session, &entry.lastSeq)
	return true
}
