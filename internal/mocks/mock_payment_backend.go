package mocks

import (
	"context"
	"sync/atomic"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// MockPaymentBackend implements domain.PaymentBackend for testing.
type MockPaymentBackend struct {
	CreateBkashPaymentFunc         func(ctx context.Context, assignmentID uint, amount float64) (*domain.PaymentCreation, error)
	ExecuteBkashPaymentFunc        func(ctx context.Context, paymentID, status string) (*domain.BkashExecuteResult, error)
	CreateVerificationPaymentFunc  func(ctx context.Context, amount float64) (*domain.PaymentCreation, error)
	ExecuteVerificationPaymentFunc func(ctx context.Context, paymentID, status string) (*domain.VerificationExecuteResult, error)

	CreateBkashCalls         int32
	ExecuteBkashCalls        int32
	CreateVerificationCalls  int32
	ExecuteVerificationCalls int32
}

// NewMockPaymentBackend creates a MockPaymentBackend with default behaviors.
func NewMockPaymentBackend() *MockPaymentBackend {
	return &MockPaymentBackend{}
}

func (m *MockPaymentBackend) CreateBkashPayment(ctx context.Context, assignmentID uint, amount float64) (*domain.PaymentCreation, error) {
	atomic.AddInt32(&m.CreateBkashCalls, 1)
	if m.CreateBkashPaymentFunc != nil {
		return m.CreateBkashPaymentFunc(ctx, assignmentID, amount)
	}
	return &domain.PaymentCreation{BkashURL: "https://pay.example/checkout", PaymentID: "mock-payment"}, nil
}

func (m *MockPaymentBackend) ExecuteBkashPayment(ctx context.Context, paymentID, status string) (*domain.BkashExecuteResult, error) {
	atomic.AddInt32(&m.ExecuteBkashCalls, 1)
	if m.ExecuteBkashPaymentFunc != nil {
		return m.ExecuteBkashPaymentFunc(ctx, paymentID, status)
	}
	return &domain.BkashExecuteResult{TrxID: "mock-trx"}, nil
}

func (m *MockPaymentBackend) CreateVerificationPayment(ctx context.Context, amount float64) (*domain.PaymentCreation, error) {
	atomic.AddInt32(&m.CreateVerificationCalls, 1)
	if m.CreateVerificationPaymentFunc != nil {
		return m.CreateVerificationPaymentFunc(ctx, amount)
	}
	return &domain.PaymentCreation{BkashURL: "https://pay.example/checkout", PaymentID: "mock-payment"}, nil
}

func (m *MockPaymentBackend) ExecuteVerificationPayment(ctx context.Context, paymentID, status string) (*domain.VerificationExecuteResult, error) {
	atomic.AddInt32(&m.ExecuteVerificationCalls, 1)
	if m.ExecuteVerificationPaymentFunc != nil {
		return m.ExecuteVerificationPaymentFunc(ctx, paymentID, status)
	}
	return &domain.VerificationExecuteResult{TrxID: "mock-trx", Status: "Verified"}, nil
}
