package cache

import (
	"path/filepath"
	"testing"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_TuitionRoundTrip(t *testing.T) {
	c := newTestCache(t)

	tuitions := []domain.Tuition{
		{ID: 1, TuitionCode: "T-1001", City: "Dhaka", Area: "Dhanmondi", Class: "Class 8", Salary: 5000, Status: "Open"},
		{ID: 2, TuitionCode: "T-1002", City: "Dhaka", Area: "Mirpur", Class: "Class 10", Salary: 8000, Status: "Open"},
	}
	if err := c.UpsertTuitions(tuitions); err != nil {
		t.Fatalf("UpsertTuitions: %v", err)
	}

	cached, err := c.Tuitions()
	if err != nil {
		t.Fatalf("Tuitions: %v", err)
	}
	if len(cached) != 2 {
		t.Fatalf("cached %d tuitions, want 2", len(cached))
	}
	byID := map[uint]domain.Tuition{}
	for _, tu := range cached {
		byID[tu.ID] = tu
	}
	if byID[1].TuitionCode != "T-1001" || byID[1].Salary != 5000 {
		t.Errorf("tuition 1 = %+v", byID[1])
	}
}

func TestCache_UpsertReplacesExisting(t *testing.T) {
	c := newTestCache(t)

	if err := c.UpsertTuitions([]domain.Tuition{{ID: 1, TuitionCode: "T-1001", Status: "Open"}}); err != nil {
		t.Fatalf("UpsertTuitions: %v", err)
	}
	if err := c.UpsertTuitions([]domain.Tuition{{ID: 1, TuitionCode: "T-1001", Status: "Closed", HasApplied: true}}); err != nil {
		t.Fatalf("UpsertTuitions: %v", err)
	}

	cached, err := c.Tuitions()
	if err != nil {
		t.Fatalf("Tuitions: %v", err)
	}
	if len(cached) != 1 {
		t.Fatalf("cached %d tuitions, want 1", len(cached))
	}
	if cached[0].Status != "Closed" || !cached[0].HasApplied {
		t.Errorf("upsert did not replace: %+v", cached[0])
	}
}

func TestCache_NotificationsNewestFirst(t *testing.T) {
	c := newTestCache(t)

	notifications := []domain.Notification{
		{ID: 1, Title: "Older", Status: "read", IsRead: true},
		{ID: 2, Title: "Newer", Status: "unread"},
	}
	if err := c.UpsertNotifications(notifications); err != nil {
		t.Fatalf("UpsertNotifications: %v", err)
	}

	cached, err := c.Notifications()
	if err != nil {
		t.Fatalf("Notifications: %v", err)
	}
	if len(cached) != 2 {
		t.Fatalf("cached %d notifications, want 2", len(cached))
	}
	if cached[0].Title != "Newer" {
		t.Errorf("first cached = %q, want Newer", cached[0].Title)
	}
}

func TestCache_Purge(t *testing.T) {
	c := newTestCache(t)

	if err := c.UpsertTuitions([]domain.Tuition{{ID: 1, TuitionCode: "T-1001"}}); err != nil {
		t.Fatalf("UpsertTuitions: %v", err)
	}
	if err := c.UpsertNotifications([]domain.Notification{{ID: 1, Title: "n"}}); err != nil {
		t.Fatalf("UpsertNotifications: %v", err)
	}

	if err := c.Purge(); err != nil {
		t.Fatalf("Purge: %v", err)
	}

	tuitions, _ := c.Tuitions()
	notifications, _ := c.Notifications()
	if len(tuitions) != 0 || len(notifications) != 0 {
		t.Errorf("purge left %d tuitions, %d notifications", len(tuitions), len(notifications))
	}
}
