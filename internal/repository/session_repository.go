package repository

import (
	"errors"
	"sync"

	"github.com/lshigami/InterviewBuddy/internal/model"
)

// ErrSessionNotFound is returned for lookups of unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores live interview sessions. Sessions are in-memory
// only; durability is out of scope. The mutex guards map access, not session
// contents - each session has exactly one logical writer.
type SessionRepository interface {
	Save(session *model.Session) error
	FindByID(id string) (*model.Session, error)
	Delete(id string) error
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{sessions: make(map[string]*model.Session)}
}

func (r *sessionRepository) Save(session *model.Session) error {
	if session == nil || session.ID == "" {
		return errors.New("session must have an ID")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *sessionRepository) FindByID(id string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *sessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}
