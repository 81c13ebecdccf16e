package storage

import (
	"sync"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// MemoryStore implements domain.SessionPersistence in memory. Used by tests
// and by callers that explicitly opt out of durable persistence.
type MemoryStore struct {
	mu     sync.RWMutex
	record *domain.PersistedSession
}

var _ domain.SessionPersistence = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory persistence.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(record *domain.PersistedSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *record
	s.record = &copied
	return nil
}

func (s *MemoryStore) Load() (*domain.PersistedSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return nil, nil
	}
	copied := *s.record
	return &copied, nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = nil
	return nil
}
