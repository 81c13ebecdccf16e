package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// SessionStoreImpl implements domain.SessionStore: the authoritative
// in-memory session, written through to durable persistence on every
// mutation and rehydrated once at process start.
type SessionStoreImpl struct {
	mu          sync.RWMutex
	persistence domain.SessionPersistence
	session     domain.Session
	listeners   map[int]domain.SessionListener
	nextID      int
}

// NewSessionStore creates a store in the loading state. Rehydrate must run
// before any authenticated request is issued.
func NewSessionStore(persistence domain.SessionPersistence) *SessionStoreImpl {
	return &SessionStoreImpl{
		persistence: persistence,
		session:     domain.Session{IsLoading: true},
		listeners:   make(map[int]domain.SessionListener),
	}
}

// Rehydrate loads the persisted record. A missing or incomplete record
// leaves the store unauthenticated. IsLoading drops in every case.
func (s *SessionStoreImpl) Rehydrate(ctx context.Context) error {
	record, err := s.persistence.Load()

	s.mu.Lock()
	s.session.IsLoading = false
	if err == nil && record != nil && record.Token != "" && record.Profile != nil {
		s.session.Token = record.Token
		s.session.Profile = record.Profile
		s.session.IsAuthenticated = true
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("rehydrating session: %w", err)
	}
	return nil
}

// SetSession atomically installs token and profile after a successful
// credential exchange and publishes SessionEstablished.
func (s *SessionStoreImpl) SetSession(token string, profile *domain.Teacher) error {
	if token == "" || profile == nil {
		return fmt.Errorf("set session: token and profile are both required")
	}

	s.mu.Lock()
	s.session = domain.Session{
		Token:           token,
		Profile:         profile,
		IsAuthenticated: true,
	}
	record := s.persistedLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	s.publish(listeners, domain.NewSessionEvent(domain.SessionEstablished, profile))

	if err := s.persistence.Save(record); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}

// ClearSession removes token and profile. Idempotent: clearing an already
// cleared session neither persists nor publishes.
func (s *SessionStoreImpl) ClearSession() error {
	s.mu.Lock()
	if s.session.Token == "" && s.session.Profile == nil {
		s.mu.Unlock()
		return nil
	}
	profile := s.session.Profile
	s.session = domain.Session{}
	listeners := s.listenersLocked()
	s.mu.Unlock()

	s.publish(listeners, domain.NewSessionEvent(domain.SessionCleared, profile))

	if err := s.persistence.Clear(); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}
	return nil
}

// MergeProfile shallow-merges the patch into the held profile. Without a
// profile this is a no-op; a profile is never synthesized from a patch.
func (s *SessionStoreImpl) MergeProfile(patch domain.ProfilePatch) error {
	s.mu.Lock()
	if s.session.Profile == nil {
		s.mu.Unlock()
		return nil
	}
	merged := *s.session.Profile
	patch.Apply(&merged)
	s.session.Profile = &merged
	record := s.persistedLocked()
	s.mu.Unlock()

	if err := s.persistence.Save(record); err != nil {
		return fmt.Errorf("persisting merged profile: %w", err)
	}
	return nil
}

// Session returns a snapshot. The profile is copied so callers cannot mutate
// store state through it.
func (s *SessionStoreImpl) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := s.session
	if s.session.Profile != nil {
		profile := *s.session.Profile
		snapshot.Profile = &profile
	}
	return snapshot
}

// Token returns the current bearer token, or empty.
func (s *SessionStoreImpl) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Subscribe registers a listener and returns its deregistration handle.
func (s *SessionStoreImpl) Subscribe(listener domain.SessionListener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *SessionStoreImpl) persistedLocked() *domain.PersistedSession {
	return &domain.PersistedSession{
		Token:           s.session.Token,
		Profile:         s.session.Profile,
		IsAuthenticated: s.session.IsAuthenticated,
	}
}

func (s *SessionStoreImpl) listenersLocked() []domain.SessionListener {
	listeners := make([]domain.SessionListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

// publish runs outside the lock so listeners may read the store.
func (s *SessionStoreImpl) publish(listeners []domain.SessionListener, event domain.SessionEvent) {
	for _, listener := range listeners {
		listener(event)
	}
}
