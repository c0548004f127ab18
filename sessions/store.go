// Package sessions holds the server side of the login cookie: an opaque
// token maps to the authenticated user's public fields until a fixed
// expiry. The store is injected into request handling, never reached
// through a global.
package sessions

import (
	"context"
	"sync"
	"time"
)

// TTL is the fixed session lifetime. Expiry is absolute, not sliding.
const TTL = 24 * time.Hour

// CookieName is the session cookie the API sets and reads.
const CookieName = "smartpark_session"

type Session struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"userId"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store is the session backend. Get returns (nil, nil) for a token that is
// unknown or expired; Delete of an unknown token is a no-op, which keeps
// logout idempotent.
type Store interface {
	Create(ctx context.Context, sess Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int, error)
}

// MemoryStore keeps sessions in the process. Good enough for a single
// instance; use the Redis store when running more than one.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (s *MemoryStore) Create(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || sess.Expired() {
		return nil, nil
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) DeleteExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, sess := range s.sessions {
		if sess.Expired() {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}
