package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/farellandr/lokly/internal/models"
)

// MemoryStore holds sessions in a map. Used by tests and local runs
// without redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (s *MemoryStore) Create(ctx context.Context, user *models.User) (*Session, error) {
	sess := Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		User:      summarize(user),
		ExpiresAt: time.Now().Add(TTL),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()
	return &sess, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(sess.ExpiresAt) {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
