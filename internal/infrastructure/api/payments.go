package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// PaymentsAPI implements domain.PaymentBackend against the payments and
// verification endpoints.
type PaymentsAPI struct {
	client *Client
}

// NewPaymentsAPI creates the payments endpoint group.
func NewPaymentsAPI(client *Client) *PaymentsAPI {
	return &PaymentsAPI{client: client}
}

var _ domain.PaymentBackend = (*PaymentsAPI)(nil)

type paymentCreationEnvelope struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    *domain.PaymentCreation `json:"data"`
}

type bkashExecuteEnvelope struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Data    *domain.BkashExecuteResult `json:"data"`
}

type verificationExecuteEnvelope struct {
	Success bool                              `json:"success"`
	Message string                            `json:"message"`
	Data    *domain.VerificationExecuteResult `json:"data"`
}

// CreateBkashPayment opens a gateway session for an assignment due.
func (p *PaymentsAPI) CreateBkashPayment(ctx context.Context, assignmentID uint, amount float64) (*domain.PaymentCreation, error) {
	body := map[string]any{
		"assignment_id": assignmentID,
		"amount":        amount,
	}
	var resp paymentCreationEnvelope
	if err := p.client.Post(ctx, pathPaymentsBkashCreate, body, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.BkashURL == "" || resp.Data.PaymentID == "" {
		return nil, fmt.Errorf("bkash create: incomplete payload in response")
	}
	return resp.Data, nil
}

// ExecuteBkashPayment confirms a redirect-completed assignment payment.
func (p *PaymentsAPI) ExecuteBkashPayment(ctx context.Context, paymentID, status string) (*domain.BkashExecuteResult, error) {
	body := map[string]string{
		"payment_id": paymentID,
		"status":     status,
	}
	var resp bkashExecuteEnvelope
	if err := p.client.Post(ctx, pathPaymentsBkashExecute, body, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, fmt.Errorf("%s: %w", resp.Message, domain.ErrPaymentExecuteFailed)
	}
	return resp.Data, nil
}

// CreateVerificationPayment opens a gateway session for the verification fee.
func (p *PaymentsAPI) CreateVerificationPayment(ctx context.Context, amount float64) (*domain.PaymentCreation, error) {
	var resp paymentCreationEnvelope
	if err := p.client.Post(ctx, pathVerificationPay, map[string]any{"amount": amount}, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if resp.Data == nil || resp.Data.BkashURL == "" || resp.Data.PaymentID == "" {
		return nil, fmt.Errorf("verification pay: incomplete payload in response")
	}
	return resp.Data, nil
}

// ExecuteVerificationPayment confirms a redirect-completed verification fee.
func (p *PaymentsAPI) ExecuteVerificationPayment(ctx context.Context, paymentID, status string) (*domain.VerificationExecuteResult, error) {
	body := map[string]string{
		"payment_id": paymentID,
		"status":     status,
	}
	var resp verificationExecuteEnvelope
	if err := p.client.Post(ctx, pathVerificationExecute, body, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, fmt.Errorf("%s: %w", resp.Message, domain.ErrPaymentExecuteFailed)
	}
	return resp.Data, nil
}

// PendingPayments lists assignments with an outstanding due alongside the
// aggregate amount.
func (p *PaymentsAPI) PendingPayments(ctx context.Context) ([]domain.PendingPayment, string, error) {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Assignments []domain.PendingPayment `json:"assignments"`
			TotalDue    string                  `json:"total_due"`
		} `json:"data"`
	}
	if err := p.client.Get(ctx, pathPaymentsPending, &resp, RequireAuth()); err != nil {
		return nil, "", err
	}
	return resp.Data.Assignments, resp.Data.TotalDue, nil
}

// PaymentHistory pages through recorded transactions, optionally scoped to
// one assignment.
func (p *PaymentsAPI) PaymentHistory(ctx context.Context, page, perPage int, assignmentID uint) ([]domain.Transaction, *domain.PageMeta, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	if assignmentID != 0 {
		query.Set("assignment_id", strconv.FormatUint(uint64(assignmentID), 10))
	}

	var resp struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    []domain.Transaction `json:"data"`
		Meta    domain.PageMeta      `json:"meta"`
	}
	if err := p.client.Get(ctx, pathPaymentsHistory, &resp, RequireAuth(), WithQuery(query)); err != nil {
		return nil, nil, err
	}
	return resp.Data, &resp.Meta, nil
}

// ManualPayment records an out-of-band payment (bkash/nagad/rocket transfer
// done outside the gateway flow).
func (p *PaymentsAPI) ManualPayment(ctx context.Context, assignmentID uint, amount float64, method, transactionID string) (*domain.Transaction, error) {
	body := map[string]any{
		"assignment_id":  assignmentID,
		"amount":         amount,
		"payment_method": method,
		"transaction_id": transactionID,
	}
	var resp struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Data    *domain.Transaction `json:"data"`
	}
	if err := p.client.Post(ctx, pathPaymentsManual, body, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
