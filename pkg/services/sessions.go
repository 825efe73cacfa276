package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navarrastar/devfolio/pkg/models"
)

// DefaultSessionTTL is how long an untouched visitor session is kept
const DefaultSessionTTL = 30 * time.Minute

type formSession struct {
	form      *ContactForm
	expiresAt time.Time
}

// SessionStore maps visitor session ids to their contact forms
type SessionStore struct {
	newForm  func() *ContactForm
	sessions map[string]*formSession
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// NewSessionStore creates a store that builds forms with newForm
func NewSessionStore(newForm func() *ContactForm, ttl time.Duration, logger *zap.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		newForm:  newForm,
		sessions: make(map[string]*formSession),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Get returns the form of a live session and extends its lifetime
func (s *SessionStore) Get(id string) (*ContactForm, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, false
	}

	now := s.now()
	if now.After(session.expiresAt) {
		delete(s.sessions, id)
		return nil, false
	}

	session.expiresAt = now.Add(s.ttl)
	return session.form, true
}

// GetOrCreate returns the form for id, starting a new session when id is
// unknown or expired. The returned id is the one the visitor should keep.
func (s *SessionStore) GetOrCreate(id string) (string, *ContactForm) {
	if id != "" {
		if form, ok := s.Get(id); ok {
			return id, form
		}
	}

	id = uuid.NewString()
	form := s.newForm()

	s.mu.Lock()
	s.sessions[id] = &formSession{form: form, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	s.logger.Debug("Started visitor session", zap.String("session", id))
	return id, form
}

// Len reports the number of tracked sessions, expired ones included
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops expired sessions. Sessions with a submission in flight are kept
// until it resolves.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, session := range s.sessions {
		if !now.After(session.expiresAt) {
			continue
		}
		if session.form.Status() == models.StatusSending {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is cancelled
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug("Expired visitor sessions", zap.Int("count", n))
			}
		}
	}
}
