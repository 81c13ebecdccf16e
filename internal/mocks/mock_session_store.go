package mocks

import (
	"context"
	"sync"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// MockSessionStore implements domain.SessionStore with a working in-memory
// default so flow tests can assert on the resulting session state, while
// still allowing individual operations to be overridden.
type MockSessionStore struct {
	SetSessionFunc   func(token string, profile *domain.Teacher) error
	ClearSessionFunc func() error
	MergeProfileFunc func(patch domain.ProfilePatch) error

	mu      sync.Mutex
	session domain.Session

	SetSessionCalls   int
	ClearSessionCalls int
	MergeProfileCalls int
	MergedPatches     []domain.ProfilePatch
}

// NewMockSessionStore creates an unauthenticated mock store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

func (m *MockSessionStore) Rehydrate(ctx context.Context) error { return nil }

func (m *MockSessionStore) SetSession(token string, profile *domain.Teacher) error {
	m.mu.Lock()
	m.SetSessionCalls++
	m.mu.Unlock()
	if m.SetSessionFunc != nil {
		return m.SetSessionFunc(token, profile)
	}
	m.mu.Lock()
	m.session = domain.Session{Token: token, Profile: profile, IsAuthenticated: true}
	m.mu.Unlock()
	return nil
}

func (m *MockSessionStore) ClearSession() error {
	m.mu.Lock()
	m.ClearSessionCalls++
	m.mu.Unlock()
	if m.ClearSessionFunc != nil {
		return m.ClearSessionFunc()
	}
	m.mu.Lock()
	m.session = domain.Session{}
	m.mu.Unlock()
	return nil
}

func (m *MockSessionStore) MergeProfile(patch domain.ProfilePatch) error {
	m.mu.Lock()
	m.MergeProfileCalls++
	m.MergedPatches = append(m.MergedPatches, patch)
	m.mu.Unlock()
	if m.MergeProfileFunc != nil {
		return m.MergeProfileFunc(patch)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.Profile == nil {
		return nil
	}
	merged := *m.session.Profile
	patch.Apply(&merged)
	m.session.Profile = &merged
	return nil
}

func (m *MockSessionStore) Session() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

func (m *MockSessionStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Token
}

func (m *MockSessionStore) Subscribe(listener domain.SessionListener) func() {
	return func() {}
}
