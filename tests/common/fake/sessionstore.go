//go:build unit

package fake

import (
	"context"
	"encoding/json"
	"sync"

	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/uuid"
)

// SessionStore keeps sessions as JSON so every read goes through the same
// encoding as the Redis store.
type SessionStore struct {
	mu   sync.Mutex
	data map[uuid.UUID][]byte
}

var _ shared.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{data: map[uuid.UUID][]byte{}}
}

func (s *SessionStore) Create(_ context.Context, sess *wizard.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sess.ID] = raw
	return nil
}

func (s *SessionStore) Get(_ context.Context, id uuid.UUID) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(id)
}

func (s *SessionStore) Update(_ context.Context, id uuid.UUID, fn func(*wizard.Session) error) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	s.data[id] = raw
	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

func (s *SessionStore) load(id uuid.UUID) (*wizard.Session, error) {
	raw, ok := s.data[id]
	if !ok {
		return nil, shared.ErrSessionNotFound
	}
	var sess wizard.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
