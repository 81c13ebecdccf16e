package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// PaymentServiceImpl implements domain.PaymentService: one payment attempt
// at a time, driven by the URLs observed on the embedded web surface. The
// controller, not the surface, decides whether an execute has already
// happened, so duplicate navigation events cannot double-charge.
type PaymentServiceImpl struct {
	backend  domain.PaymentBackend
	sessions domain.SessionStore

	mu       sync.Mutex
	current  *domain.PaymentSession
	executed map[string]bool
}

// NewPaymentService creates the payment flow controller.
func NewPaymentService(backend domain.PaymentBackend, sessions domain.SessionStore) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		backend:  backend,
		sessions: sessions,
		executed: make(map[string]bool),
	}
}

var _ domain.PaymentService = (*PaymentServiceImpl)(nil)

// StartAssignmentPayment opens a gateway session against an assignment due.
func (s *PaymentServiceImpl) StartAssignmentPayment(ctx context.Context, assignmentID uint, amount float64) (*domain.PaymentSession, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", domain.ErrMissingField)
	}
	return s.start(ctx, domain.PaymentContextAssignment, assignmentID, amount)
}

// StartVerificationPayment opens a gateway session for the verification fee.
func (s *PaymentServiceImpl) StartVerificationPayment(ctx context.Context, amount float64) (*domain.PaymentSession, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", domain.ErrMissingField)
	}
	return s.start(ctx, domain.PaymentContextVerification, 0, amount)
}

func (s *PaymentServiceImpl) start(ctx context.Context, paymentCtx domain.PaymentContext, assignmentID uint, amount float64) (*domain.PaymentSession, error) {
	s.mu.Lock()
	if s.current != nil && !s.current.Terminal() {
		s.mu.Unlock()
		return nil, fmt.Errorf("payment %s already in progress", s.current.PaymentID)
	}
	s.current = &domain.PaymentSession{
		Context:      paymentCtx,
		AssignmentID: assignmentID,
		Amount:       amount,
		Status:       domain.PaymentCreating,
		CreatedAt:    time.Now(),
	}
	s.mu.Unlock()

	var creation *domain.PaymentCreation
	var err error
	if paymentCtx == domain.PaymentContextVerification {
		creation, err = s.backend.CreateVerificationPayment(ctx, amount)
	} else {
		creation, err = s.backend.CreateBkashPayment(ctx, assignmentID, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// Creation failure is terminal for the attempt; no partial state.
		s.current = nil
		return nil, err
	}
	s.current.PaymentID = creation.PaymentID
	s.current.RedirectURL = creation.BkashURL
	s.current.Status = domain.PaymentRedirecting
	return s.snapshotLocked(), nil
}

// HandleRedirectURL feeds one observed URL into the state machine. Status
// detection is substring-based on the raw URL. Execute fires at most once
// per payment id; anything observed after a terminal status is ignored.
func (s *PaymentServiceImpl) HandleRedirectURL(ctx context.Context, observedURL string) error {
	switch {
	case strings.Contains(observedURL, "status=success"):
		return s.handleSuccess(ctx)
	case strings.Contains(observedURL, "status=cancel"),
		strings.Contains(observedURL, "status=failure"):
		s.cancel()
		return nil
	}
	// Intermediate gateway navigation; nothing to do.
	return nil
}

func (s *PaymentServiceImpl) handleSuccess(ctx context.Context) error {
	s.mu.Lock()
	if s.current == nil || s.current.Status != domain.PaymentRedirecting || s.current.PaymentID == "" {
		s.mu.Unlock()
		return nil
	}
	if s.executed[s.current.PaymentID] {
		s.mu.Unlock()
		return nil
	}
	// Marked before the call: a duplicate navigation event arriving while
	// the execute is in flight must not trigger a second one.
	s.executed[s.current.PaymentID] = true
	s.current.Status = domain.PaymentExecuting
	paymentID := s.current.PaymentID
	paymentCtx := s.current.Context
	s.mu.Unlock()

	var trxID, profileStatus string
	var err error
	if paymentCtx == domain.PaymentContextVerification {
		var result *domain.VerificationExecuteResult
		result, err = s.backend.ExecuteVerificationPayment(ctx, paymentID, "success")
		if err == nil {
			trxID = result.TrxID
			profileStatus = result.Status
		}
	} else {
		var result *domain.BkashExecuteResult
		result, err = s.backend.ExecuteBkashPayment(ctx, paymentID, "success")
		if err == nil {
			trxID = result.TrxID
		}
	}

	s.mu.Lock()
	if err != nil {
		s.current.Status = domain.PaymentFailure
		s.mu.Unlock()
		return fmt.Errorf("executing payment %s: %w", paymentID, err)
	}
	s.current.Status = domain.PaymentSuccess
	s.current.TrxID = trxID
	s.mu.Unlock()

	if paymentCtx == domain.PaymentContextVerification {
		if profileStatus == "" {
			profileStatus = "Verified"
		}
		if err := s.sessions.MergeProfile(domain.ProfilePatch{Status: &profileStatus}); err != nil {
			return err
		}
	}
	return nil
}

func (s *PaymentServiceImpl) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.Terminal() {
		return
	}
	s.current.Status = domain.PaymentCancelled
}

// Dismiss handles the user closing the web surface before any terminal
// signal; the attempt must not linger in creating or redirecting.
func (s *PaymentServiceImpl) Dismiss() {
	s.cancel()
}

// Current returns a snapshot of the active attempt, or nil.
func (s *PaymentServiceImpl) Current() *domain.PaymentSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *PaymentServiceImpl) snapshotLocked() *domain.PaymentSession {
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// Watch consumes a stream of observed URLs until the channel closes, the
// context ends, or the attempt reaches a terminal status. It backs callers
// that model the web surface's navigation events as a channel.
func (s *PaymentServiceImpl) Watch(ctx context.Context, urls <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			s.Dismiss()
			return ctx.Err()
		case observedURL, ok := <-urls:
			if !ok {
				s.Dismiss()
				return nil
			}
			if err := s.HandleRedirectURL(ctx, observedURL); err != nil {
				return err
			}
			if current := s.Current(); current == nil || current.Terminal() {
				return nil
			}
		}
	}
}
