package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// NotificationsAPI implements domain.NotificationBackend.
type NotificationsAPI struct {
	client *Client
}

// NewNotificationsAPI creates the notifications endpoint group.
func NewNotificationsAPI(client *Client) domain.NotificationBackend {
	return &NotificationsAPI{client: client}
}

// List pages through the teacher's notifications, newest first.
func (n *NotificationsAPI) List(ctx context.Context, page, perPage int) ([]domain.Notification, *domain.PageMeta, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var resp struct {
		Success bool                  `json:"success"`
		Message string                `json:"message"`
		Data    []domain.Notification `json:"data"`
		Meta    domain.PageMeta       `json:"meta"`
	}
	if err := n.client.Get(ctx, pathNotifications, &resp, RequireAuth(), WithQuery(query)); err != nil {
		return nil, nil, err
	}
	return resp.Data, &resp.Meta, nil
}

// UnreadCount fetches the unread badge count.
func (n *NotificationsAPI) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := n.client.Get(ctx, pathNotificationsUnreadCount, &resp, RequireAuth()); err != nil {
		return 0, err
	}
	return resp.Data.Count, nil
}

// MarkRead marks one notification read.
func (n *NotificationsAPI) MarkRead(ctx context.Context, id uint) error {
	path := fmt.Sprintf("%s/%d/read", pathNotifications, id)
	return n.client.Post(ctx, path, nil, nil, RequireAuth())
}

// MarkAllRead marks every notification read.
func (n *NotificationsAPI) MarkAllRead(ctx context.Context) error {
	return n.client.Post(ctx, pathNotificationsReadAll, nil, nil, RequireAuth())
}
