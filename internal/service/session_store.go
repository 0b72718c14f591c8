package service

import (
	"sync"
	"time"

	"github.com/foyerapp/foyer-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultSessionTTL is how long a parked access token stays resolvable
	DefaultSessionTTL = 10 * time.Minute
	// sessionCleanupInterval is the sweep interval for expired sessions
	sessionCleanupInterval = time.Minute
)

// SessionStore parks acquired access tokens server-side so the browser only
// ever sees an opaque session handle, never the bearer token itself.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]sessionEntry
	ttl      time.Duration
	stopCh   chan struct{}
}

type sessionEntry struct {
	accessToken string
	expiresAt   time.Time
}

// NewSessionStore creates a new SessionStore with the default TTL
func NewSessionStore() *SessionStore {
	return NewSessionStoreWithTTL(DefaultSessionTTL)
}

// NewSessionStoreWithTTL creates a SessionStore with a custom TTL
func NewSessionStoreWithTTL(ttl time.Duration) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]sessionEntry),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}

	// Start cleanup goroutine
	go s.cleanup()

	return s
}

// Put parks an access token and returns the opaque session handle
func (s *SessionStore) Put(accessToken string) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = sessionEntry{
		accessToken: accessToken,
		expiresAt:   time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return id
}

// Get resolves a session handle to its access token. Expired or unknown
// handles fail with ErrSessionNotFound.
func (s *SessionStore) Get(id string) (string, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return "", domain.ErrSessionNotFound
	}
	return entry.accessToken, nil
}

// cleanup periodically removes expired sessions
func (s *SessionStore) cleanup() {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			now := time.Now()
			for id, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, id)
					log.Debug().Str("session_id", id).Msg("Cleaned up expired bank session")
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

// Stop stops the cleanup goroutine
func (s *SessionStore) Stop() {
	close(s.stopCh)
}
