package mocks

import (
	"sync"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// MockSessionPersistence implements domain.SessionPersistence in memory with
// overridable operations and call recording.
type MockSessionPersistence struct {
	SaveFunc  func(record *domain.PersistedSession) error
	LoadFunc  func() (*domain.PersistedSession, error)
	ClearFunc func() error

	mu     sync.Mutex
	record *domain.PersistedSession

	SaveCalls  int
	LoadCalls  int
	ClearCalls int
}

// NewMockSessionPersistence creates an empty persistence mock.
func NewMockSessionPersistence() *MockSessionPersistence {
	return &MockSessionPersistence{}
}

func (m *MockSessionPersistence) Save(record *domain.PersistedSession) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *record
	m.record = &copied
	return nil
}

func (m *MockSessionPersistence) Load() (*domain.PersistedSession, error) {
	m.mu.Lock()
	m.LoadCalls++
	m.mu.Unlock()
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.record == nil {
		return nil, nil
	}
	copied := *m.record
	return &copied, nil
}

func (m *MockSessionPersistence) Clear() error {
	m.mu.Lock()
	m.ClearCalls++
	m.mu.Unlock()
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = nil
	return nil
}

// Record returns the currently stored record for assertions.
func (m *MockSessionPersistence) Record() *domain.PersistedSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.record == nil {
		return nil
	}
	copied := *m.record
	return &copied
}
