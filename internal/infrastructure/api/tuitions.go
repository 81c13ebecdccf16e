package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// TuitionsAPI implements domain.TuitionBackend against /tuitions and
// /applications endpoints.
type TuitionsAPI struct {
	client *Client
}

// NewTuitionsAPI creates the tuition listing endpoint group.
func NewTuitionsAPI(client *Client) *TuitionsAPI {
	return &TuitionsAPI{client: client}
}

var _ domain.TuitionBackend = (*TuitionsAPI)(nil)

// List pages through open tuition listings.
func (t *TuitionsAPI) List(ctx context.Context, page, perPage int, filters domain.TuitionFilters) ([]domain.Tuition, *domain.PageMeta, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	if filters.City != "" {
		query.Set("city", filters.City)
	}
	if filters.Area != "" {
		query.Set("area", filters.Area)
	}
	if filters.Class != "" {
		query.Set("class", filters.Class)
	}
	if filters.Medium != "" {
		query.Set("medium", filters.Medium)
	}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}

	var resp struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    []domain.Tuition `json:"data"`
		Meta    domain.PageMeta  `json:"meta"`
	}
	if err := t.client.Get(ctx, pathTuitions, &resp, RequireAuth(), WithQuery(query)); err != nil {
		return nil, nil, err
	}
	return resp.Data, &resp.Meta, nil
}

// Get fetches one tuition by id.
func (t *TuitionsAPI) Get(ctx context.Context, id uint) (*domain.Tuition, error) {
	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    *domain.Tuition `json:"data"`
	}
	path := fmt.Sprintf("%s/%d", pathTuitions, id)
	if err := t.client.Get(ctx, path, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("tuition %d: empty payload in response", id)
	}
	return resp.Data, nil
}

// Apply submits an application against a tuition.
func (t *TuitionsAPI) Apply(ctx context.Context, tuitionID uint, note string) (*domain.Application, error) {
	body := map[string]any{
		"tuition_id": tuitionID,
	}
	if note != "" {
		body["note"] = note
	}
	var resp struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Data    *domain.Application `json:"data"`
	}
	if err := t.client.Post(ctx, pathApplications, body, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Applications pages through the teacher's own applications.
func (t *TuitionsAPI) Applications(ctx context.Context, page, perPage int) ([]domain.Application, *domain.PageMeta, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var resp struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    []domain.Application `json:"data"`
		Meta    domain.PageMeta      `json:"meta"`
	}
	if err := t.client.Get(ctx, pathApplications, &resp, RequireAuth(), WithQuery(query)); err != nil {
		return nil, nil, err
	}
	return resp.Data, &resp.Meta, nil
}
