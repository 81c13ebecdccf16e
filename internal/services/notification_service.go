package services

import (
	"context"
	"log"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
	"github.com/touhid12310/bdtuitions-android-ios/internal/infrastructure/cache"
)

// NotificationService serves the notification feed with offline fallback and
// keeps the unread badge count mirrored into the session profile.
type NotificationService struct {
	backend  domain.NotificationBackend
	sessions domain.SessionStore
	cache    *cache.Cache
}

// NewNotificationService creates the notification service. cache may be nil.
func NewNotificationService(backend domain.NotificationBackend, sessions domain.SessionStore, c *cache.Cache) *NotificationService {
	return &NotificationService{backend: backend, sessions: sessions, cache: c}
}

// List fetches a page of notifications, caching it for offline reads.
func (s *NotificationService) List(ctx context.Context, page, perPage int) (notifications []domain.Notification, meta *domain.PageMeta, fromCache bool, err error) {
	notifications, meta, err = s.backend.List(ctx, page, perPage)
	if err == nil {
		if s.cache != nil {
			if cacheErr := s.cache.UpsertNotifications(notifications); cacheErr != nil {
				log.Printf("notification cache write failed: %v", cacheErr)
			}
		}
		return notifications, meta, false, nil
	}

	if s.cache != nil && isOffline(err) {
		cached, cacheErr := s.cache.Notifications()
		if cacheErr == nil && len(cached) > 0 {
			return cached, nil, true, nil
		}
	}
	return nil, nil, false, err
}

// UnreadCount fetches the badge count and mirrors it into the profile so
// screens bound to the session see it without a second fetch.
func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	count, err := s.backend.UnreadCount(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.sessions.MergeProfile(domain.ProfilePatch{UnreadNotificationsCount: &count}); err != nil {
		return count, err
	}
	return count, nil
}

// MarkRead marks one notification read.
func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	return s.backend.MarkRead(ctx, id)
}

// MarkAllRead marks everything read and zeroes the mirrored badge count.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	if err := s.backend.MarkAllRead(ctx); err != nil {
		return err
	}
	zero := 0
	return s.sessions.MergeProfile(domain.ProfilePatch{UnreadNotificationsCount: &zero})
}
