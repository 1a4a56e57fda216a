package study

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/cardforge/cardforge/internal/domain"
)

// ErrSessionNotFound is returned when a session ID does not refer to an
// active session.
var ErrSessionNotFound = errors.New("session not found")

// Registry tracks the active study sessions by ID. Sessions live only in
// memory; exiting a session removes it.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry returns an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*Session)}
}

// Start creates a session over the given set and registers it under a fresh ID.
func (r *Registry) Start(set domain.Set) (uuid.UUID, *Session, error) {
	session, err := NewSession(set)
	if err != nil {
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	r.mu.Lock()
	r.sessions[id] = session
	r.mu.Unlock()
	return id, session, nil
}

// Get returns the session registered under id.
// Returns ErrSessionNotFound if none exists.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Remove drops the session registered under id, ending the review.
// Removing an unknown ID is a no-op.
func (r *Registry) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
