package api

import (
	"context"
	"fmt"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// DashboardAPI covers the dashboard aggregate endpoints.
type DashboardAPI struct {
	client *Client
}

// NewDashboardAPI creates the dashboard endpoint group.
func NewDashboardAPI(client *Client) *DashboardAPI {
	return &DashboardAPI{client: client}
}

// Stats fetches the dashboard aggregates.
func (d *DashboardAPI) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var resp struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Data    *domain.DashboardStats `json:"data"`
	}
	if err := d.client.Get(ctx, pathDashboardStats, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("dashboard stats: empty payload in response")
	}
	return resp.Data, nil
}

// RecentApplications fetches the latest applications for the dashboard feed.
func (d *DashboardAPI) RecentApplications(ctx context.Context) ([]domain.Application, error) {
	var resp struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    []domain.Application `json:"data"`
	}
	if err := d.client.Get(ctx, pathDashboardRecentApplications, &resp, RequireAuth()); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
