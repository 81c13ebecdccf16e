package mocks

import (
	"context"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// MockTuitionBackend implements domain.TuitionBackend for testing.
type MockTuitionBackend struct {
	ListFunc  func(ctx context.Context, page, perPage int, filters domain.TuitionFilters) ([]domain.Tuition, *domain.PageMeta, error)
	GetFunc   func(ctx context.Context, id uint) (*domain.Tuition, error)
	ApplyFunc func(ctx context.Context, tuitionID uint, note string) (*domain.Application, error)

	ListCalls  int
	GetCalls   int
	ApplyCalls int
}

// NewMockTuitionBackend creates a MockTuitionBackend with default behaviors.
func NewMockTuitionBackend() *MockTuitionBackend {
	return &MockTuitionBackend{}
}

func (m *MockTuitionBackend) List(ctx context.Context, page, perPage int, filters domain.TuitionFilters) ([]domain.Tuition, *domain.PageMeta, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, perPage, filters)
	}
	return nil, &domain.PageMeta{CurrentPage: page, PerPage: perPage}, nil
}

func (m *MockTuitionBackend) Get(ctx context.Context, id uint) (*domain.Tuition, error) {
	m.GetCalls++
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &domain.Tuition{ID: id}, nil
}

func (m *MockTuitionBackend) Apply(ctx context.Context, tuitionID uint, note string) (*domain.Application, error) {
	m.ApplyCalls++
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, tuitionID, note)
	}
	return &domain.Application{TuitionID: tuitionID, Status: "Pending"}, nil
}

// MockNotificationBackend implements domain.NotificationBackend for testing.
type MockNotificationBackend struct {
	ListFunc        func(ctx context.Context, page, perPage int) ([]domain.Notification, *domain.PageMeta, error)
	UnreadCountFunc func(ctx context.Context) (int, error)
	MarkReadFunc    func(ctx context.Context, id uint) error
	MarkAllReadFunc func(ctx context.Context) error

	ListCalls        int
	UnreadCountCalls int
	MarkReadCalls    int
	MarkAllReadCalls int
}

// NewMockNotificationBackend creates a MockNotificationBackend with default
// behaviors.
func NewMockNotificationBackend() *MockNotificationBackend {
	return &MockNotificationBackend{}
}

func (m *MockNotificationBackend) List(ctx context.Context, page, perPage int) ([]domain.Notification, *domain.PageMeta, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, perPage)
	}
	return nil, &domain.PageMeta{CurrentPage: page, PerPage: perPage}, nil
}

func (m *MockNotificationBackend) UnreadCount(ctx context.Context) (int, error) {
	m.UnreadCountCalls++
	if m.UnreadCountFunc != nil {
		return m.UnreadCountFunc(ctx)
	}
	return 0, nil
}

func (m *MockNotificationBackend) MarkRead(ctx context.Context, id uint) error {
	m.MarkReadCalls++
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id)
	}
	return nil
}

func (m *MockNotificationBackend) MarkAllRead(ctx context.Context) error {
	m.MarkAllReadCalls++
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx)
	}
	return nil
}
