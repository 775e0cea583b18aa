// Package storage keeps scan sessions between requests.
package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/vibear-app/vibear/internal/session"
)

// ErrSessionNotFound is returned for an unknown or expired session id
var ErrSessionNotFound = errors.New("session not found")

// Store persists sessions by id
type Store interface {
	Get(ctx context.Context, id string) (*session.Session, error)
	Set(ctx context.Context, s *session.Session) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*session.Session, error)
}

// SessionStore is an in-memory Store holding sessions by value
type SessionStore struct {
	sessions map[string]session.Session
	mu       sync.RWMutex
}

func New() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session.Session),
	}
}

func (s *SessionStore) Get(_ context.Context, id string) (*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, exists := s.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *SessionStore) Set(_ context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

// List returns sessions oldest first
func (s *SessionStore) List(_ context.Context) ([]*session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*session.Session, 0, len(s.sessions))
	for _, v := range s.sessions {
		sess := v
		result = append(result, &sess)
	}
	sortByCreation(result)
	return result, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func sortByCreation(sessions []*session.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
}
