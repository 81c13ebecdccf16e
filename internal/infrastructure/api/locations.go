package api

import (
	"context"
	"net/url"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// LocationsAPI covers the city/area picker endpoints. These are
// unauthenticated; the registration screen uses them before any token
// exists.
type LocationsAPI struct {
	client *Client
}

// NewLocationsAPI creates the locations endpoint group.
func NewLocationsAPI(client *Client) *LocationsAPI {
	return &LocationsAPI{client: client}
}

// Cities lists selectable cities.
func (l *LocationsAPI) Cities(ctx context.Context) ([]domain.City, error) {
	var resp struct {
		Success bool          `json:"success"`
		Message string        `json:"message"`
		Data    []domain.City `json:"data"`
	}
	if err := l.client.Get(ctx, pathLocationsCities, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Areas lists selectable areas within a city.
func (l *LocationsAPI) Areas(ctx context.Context, cityID string) ([]domain.Area, error) {
	query := url.Values{}
	query.Set("city_id", cityID)

	var resp struct {
		Success bool          `json:"success"`
		Message string        `json:"message"`
		Data    []domain.Area `json:"data"`
	}
	if err := l.client.Get(ctx, pathLocationsAreas, &resp, WithQuery(query)); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
