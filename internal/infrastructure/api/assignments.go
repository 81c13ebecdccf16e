package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// AssignmentsAPI covers /assignments and /refunds endpoints.
type AssignmentsAPI struct {
	client *Client
}

// NewAssignmentsAPI creates the assignments endpoint group.
func NewAssignmentsAPI(client *Client) *AssignmentsAPI {
	return &AssignmentsAPI{client: client}
}

// List pages through the teacher's assignments.
func (a *AssignmentsAPI) List(ctx context.Context, page, perPage int) ([]domain.Assignment, *domain.PageMeta, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var resp struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Data    []domain.Assignment `json:"data"`
		Meta    domain.PageMeta     `json:"meta"`
	}
	if err := a.client.Get(ctx, pathAssignments, &resp, RequireAuth(), WithQuery(query)); err != nil {
		return nil, nil, err
	}
	return resp.Data, &resp.Meta, nil
}

// Get fetches one assignment by id.
func (a *AssignmentsAPI) Get(ctx context.Context, id uint) (*domain.Assignment, error) {
	var resp struct {
		Success bool               `json:"success"`
		Message string             `json:"message"`
		Data    *domain.Assignment `json:"data"`
	}
	path := fmt.Sprintf("%s/%d", pathAssignments, id)
	if err := a.client.Get(ctx, path, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("assignment %d: empty payload in response", id)
	}
	return resp.Data, nil
}

// RefundEligible lists assignments a refund may be requested against.
func (a *AssignmentsAPI) RefundEligible(ctx context.Context) ([]domain.RefundEligibleAssignment, error) {
	var resp struct {
		Success bool                              `json:"success"`
		Message string                            `json:"message"`
		Data    []domain.RefundEligibleAssignment `json:"data"`
	}
	if err := a.client.Get(ctx, pathRefunds, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RequestRefund submits a refund request. The amount must not exceed the
// assignment's eligible cap; that is validated locally before any network
// call is issued.
func (a *AssignmentsAPI) RequestRefund(ctx context.Context, assignmentID uint, amount, paidAmount float64, reason string) error {
	if amount > paidAmount {
		return domain.NewValidationError("amount", domain.ErrRefundCapExceeded)
	}
	body := map[string]any{
		"assignment_id": assignmentID,
		"amount":        amount,
		"reason":        reason,
	}
	return a.client.Post(ctx, pathRefunds, body, nil, RequireAuth())
}
