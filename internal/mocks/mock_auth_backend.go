package mocks

import (
	"context"
	"sync/atomic"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// MockAuthBackend implements domain.AuthBackend for testing.
type MockAuthBackend struct {
	LoginFunc          func(ctx context.Context, login, password string) (*domain.AuthPayload, error)
	RegisterFunc       func(ctx context.Context, form domain.RegisterForm) (string, error)
	VerifyOTPFunc      func(ctx context.Context, phone, code string) (*domain.AuthPayload, error)
	ResendOTPFunc      func(ctx context.Context, phone string) error
	ForgotPasswordFunc func(ctx context.Context, phone string) (string, error)
	ResetPasswordFunc  func(ctx context.Context, phone, code, newPassword string) error
	LogoutFunc         func(ctx context.Context) error
	MeFunc             func(ctx context.Context) (*domain.Teacher, error)

	// Call counters for asserting how many network calls a flow issued.
	LoginCalls          int32
	RegisterCalls       int32
	VerifyOTPCalls      int32
	ResendOTPCalls      int32
	ForgotPasswordCalls int32
	ResetPasswordCalls  int32
	LogoutCalls         int32
	MeCalls             int32
}

// NewMockAuthBackend creates a MockAuthBackend with default behaviors.
func NewMockAuthBackend() *MockAuthBackend {
	return &MockAuthBackend{}
}

func (m *MockAuthBackend) Login(ctx context.Context, login, password string) (*domain.AuthPayload, error) {
	atomic.AddInt32(&m.LoginCalls, 1)
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, login, password)
	}
	return &domain.AuthPayload{Token: "mock-token", Teacher: &domain.Teacher{ID: 1}}, nil
}

func (m *MockAuthBackend) Register(ctx context.Context, form domain.RegisterForm) (string, error) {
	atomic.AddInt32(&m.RegisterCalls, 1)
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, form)
	}
	return form.PhoneNumber, nil
}

func (m *MockAuthBackend) VerifyOTP(ctx context.Context, phone, code string) (*domain.AuthPayload, error) {
	atomic.AddInt32(&m.VerifyOTPCalls, 1)
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, phone, code)
	}
	return &domain.AuthPayload{Token: "mock-token", Teacher: &domain.Teacher{ID: 1}}, nil
}

func (m *MockAuthBackend) ResendOTP(ctx context.Context, phone string) error {
	atomic.AddInt32(&m.ResendOTPCalls, 1)
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, phone)
	}
	return nil
}

func (m *MockAuthBackend) ForgotPassword(ctx context.Context, phone string) (string, error) {
	atomic.AddInt32(&m.ForgotPasswordCalls, 1)
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, phone)
	}
	return phone, nil
}

func (m *MockAuthBackend) ResetPassword(ctx context.Context, phone, code, newPassword string) error {
	atomic.AddInt32(&m.ResetPasswordCalls, 1)
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, phone, code, newPassword)
	}
	return nil
}

func (m *MockAuthBackend) Logout(ctx context.Context) error {
	atomic.AddInt32(&m.LogoutCalls, 1)
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *MockAuthBackend) Me(ctx context.Context) (*domain.Teacher, error) {
	atomic.AddInt32(&m.MeCalls, 1)
	if m.MeFunc != nil {
		return m.MeFunc(ctx)
	}
	return &domain.Teacher{ID: 1}, nil
}
