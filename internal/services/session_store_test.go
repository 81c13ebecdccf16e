package services

import (
	"context"
	"testing"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
	"github.com/touhid12310/bdtuitions-android-ios/internal/mocks"
)

func newTestSessionStore(t *testing.T) (*SessionStoreImpl, *mocks.MockSessionPersistence) {
	t.Helper()
	persistence := mocks.NewMockSessionPersistence()
	store := NewSessionStore(persistence)
	if err := store.Rehydrate(context.Background()); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	return store, persistence
}

func testProfile() *domain.Teacher {
	return &domain.Teacher{ID: 1, TeacherName: "Rahim Uddin", PhoneNumber: "01711111111", Status: "Pending"}
}

// Authenticated iff both token and profile are present.
func TestSessionStore_AuthenticatedRequiresTokenAndProfile(t *testing.T) {
	store, _ := newTestSessionStore(t)

	if store.Session().Authenticated() {
		t.Error("fresh store must not be authenticated")
	}

	if err := store.SetSession("abc", testProfile()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	session := store.Session()
	if !session.Authenticated() || !session.IsAuthenticated {
		t.Error("store must be authenticated after SetSession")
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	session = store.Session()
	if session.Authenticated() || session.IsAuthenticated || session.Token != "" || session.Profile != nil {
		t.Errorf("store must be fully cleared, got %+v", session)
	}
}

func TestSessionStore_SetSessionRejectsIncomplete(t *testing.T) {
	store, persistence := newTestSessionStore(t)

	if err := store.SetSession("", testProfile()); err == nil {
		t.Error("SetSession without token must fail")
	}
	if err := store.SetSession("abc", nil); err == nil {
		t.Error("SetSession without profile must fail")
	}
	if persistence.SaveCalls != 0 {
		t.Errorf("rejected SetSession must not persist, saved %d times", persistence.SaveCalls)
	}
}

// Clearing twice yields the same state as clearing once, and the second
// clear is a true no-op.
func TestSessionStore_ClearIsIdempotent(t *testing.T) {
	store, persistence := newTestSessionStore(t)

	if err := store.SetSession("abc", testProfile()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	var events []domain.SessionEventType
	unsubscribe := store.Subscribe(func(e domain.SessionEvent) {
		events = append(events, e.Type)
	})
	defer unsubscribe()

	if err := store.ClearSession(); err != nil {
		t.Fatalf("first ClearSession: %v", err)
	}
	clearsAfterFirst := persistence.ClearCalls

	if err := store.ClearSession(); err != nil {
		t.Fatalf("second ClearSession: %v", err)
	}

	if persistence.ClearCalls != clearsAfterFirst {
		t.Error("second clear must not touch persistence")
	}
	if len(events) != 1 || events[0] != domain.SessionCleared {
		t.Errorf("events = %v, want exactly one SessionCleared", events)
	}
	if store.Session().Authenticated() {
		t.Error("store must stay unauthenticated")
	}
}

// Merging into an empty session is a no-op for all patches.
func TestSessionStore_MergeProfileWithoutProfile(t *testing.T) {
	store, persistence := newTestSessionStore(t)

	status := "Verified"
	count := 5
	patches := []domain.ProfilePatch{
		{},
		{Status: &status},
		{Status: &status, UnreadNotificationsCount: &count},
	}

	for _, patch := range patches {
		if err := store.MergeProfile(patch); err != nil {
			t.Fatalf("MergeProfile: %v", err)
		}
	}

	if session := store.Session(); session.Profile != nil {
		t.Error("merge must never synthesize a profile")
	}
	if persistence.SaveCalls != 0 {
		t.Error("no-op merges must not persist")
	}
}

func TestSessionStore_MergeProfileUpdatesFields(t *testing.T) {
	store, persistence := newTestSessionStore(t)

	if err := store.SetSession("abc", testProfile()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	status := "Verified"
	if err := store.MergeProfile(domain.ProfilePatch{Status: &status}); err != nil {
		t.Fatalf("MergeProfile: %v", err)
	}

	session := store.Session()
	if session.Profile.Status != "Verified" {
		t.Errorf("Status = %q, want Verified", session.Profile.Status)
	}
	if session.Profile.TeacherName != "Rahim Uddin" {
		t.Error("merge must not disturb other fields")
	}
	if session.Token != "abc" {
		t.Error("merge must not disturb the token")
	}

	// The merge was written through.
	record := persistence.Record()
	if record == nil || record.Profile.Status != "Verified" {
		t.Errorf("persisted record = %+v", record)
	}
}

func TestSessionStore_PersistsOnlyDurableFields(t *testing.T) {
	store, persistence := newTestSessionStore(t)

	if err := store.SetSession("abc", testProfile()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	record := persistence.Record()
	if record == nil {
		t.Fatal("SetSession must persist a record")
	}
	if record.Token != "abc" || !record.IsAuthenticated || record.Profile == nil {
		t.Errorf("record = %+v", record)
	}
}

func TestSessionStore_RehydrateRestoresSession(t *testing.T) {
	persistence := mocks.NewMockSessionPersistence()
	if err := persistence.Save(&domain.PersistedSession{
		Token:           "persisted-token",
		Profile:         testProfile(),
		IsAuthenticated: true,
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	store := NewSessionStore(persistence)
	if !store.Session().IsLoading {
		t.Error("store must report loading before rehydration")
	}

	if err := store.Rehydrate(context.Background()); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}

	session := store.Session()
	if session.IsLoading {
		t.Error("IsLoading must drop after rehydration")
	}
	if !session.Authenticated() || session.Token != "persisted-token" {
		t.Errorf("session = %+v", session)
	}
}

func TestSessionStore_RehydrateIncompleteRecord(t *testing.T) {
	persistence := mocks.NewMockSessionPersistence()
	// A record missing its profile must not authenticate.
	if err := persistence.Save(&domain.PersistedSession{Token: "orphan", IsAuthenticated: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	store := NewSessionStore(persistence)
	if err := store.Rehydrate(context.Background()); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}

	session := store.Session()
	if session.Authenticated() || session.Token != "" {
		t.Errorf("incomplete record must rehydrate unauthenticated, got %+v", session)
	}
	if session.IsLoading {
		t.Error("IsLoading must drop even for incomplete records")
	}
}

func TestSessionStore_PublishesLifecycleEvents(t *testing.T) {
	store, _ := newTestSessionStore(t)

	var events []domain.SessionEvent
	unsubscribe := store.Subscribe(func(e domain.SessionEvent) {
		events = append(events, e)
	})

	if err := store.SetSession("abc", testProfile()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != domain.SessionEstablished || events[0].Teacher == nil {
		t.Errorf("first event = %+v", events[0])
	}
	if events[1].Type != domain.SessionCleared {
		t.Errorf("second event = %+v", events[1])
	}

	// After unsubscribe no further events arrive.
	unsubscribe()
	if err := store.SetSession("def", testProfile()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	if len(events) != 2 {
		t.Error("unsubscribed listener must not receive events")
	}
}

func TestSessionStore_SnapshotIsolation(t *testing.T) {
	store, _ := newTestSessionStore(t)

	if err := store.SetSession("abc", testProfile()); err != nil {
		t.Fatalf("SetSession: %v", err)
	}

	snapshot := store.Session()
	snapshot.Profile.Status = "Tampered"

	if store.Session().Profile.Status == "Tampered" {
		t.Error("mutating a snapshot must not affect the store")
	}
}
