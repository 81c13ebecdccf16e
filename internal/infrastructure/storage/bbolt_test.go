package storage

import (
	"path/filepath"
	"testing"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoltStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	record := &domain.PersistedSession{
		Token:           "abc",
		Profile:         &domain.Teacher{ID: 1, TeacherName: "Rahim Uddin", PhoneNumber: "01711111111"},
		IsAuthenticated: true,
	}
	if err := store.Save(record); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil after Save")
	}
	if loaded.Token != "abc" || !loaded.IsAuthenticated {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.Profile == nil || loaded.Profile.TeacherName != "Rahim Uddin" {
		t.Errorf("profile = %+v", loaded.Profile)
	}
}

func TestBoltStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	record, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if record != nil {
		t.Errorf("empty store must load nil, got %+v", record)
	}
}

func TestBoltStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(&domain.PersistedSession{Token: "abc", IsAuthenticated: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("first Clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}

	record, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if record != nil {
		t.Errorf("record survived Clear: %+v", record)
	}
}

func TestBoltStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(&domain.PersistedSession{Token: "first", IsAuthenticated: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(&domain.PersistedSession{Token: "second", IsAuthenticated: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Token != "second" {
		t.Errorf("Token = %q, want second", loaded.Token)
	}
}

func TestBoltStore_DeviceIDStable(t *testing.T) {
	store := newTestStore(t)

	first, err := store.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID: %v", err)
	}
	if first == "" {
		t.Fatal("DeviceID must not be empty")
	}
	second, err := store.DeviceID()
	if err != nil {
		t.Fatalf("DeviceID: %v", err)
	}
	if first != second {
		t.Errorf("DeviceID changed between calls: %q then %q", first, second)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	if record, _ := store.Load(); record != nil {
		t.Fatal("fresh memory store must be empty")
	}
	if err := store.Save(&domain.PersistedSession{Token: "abc", IsAuthenticated: true}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	record, _ := store.Load()
	if record == nil || record.Token != "abc" {
		t.Errorf("Load = %+v", record)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if record, _ := store.Load(); record != nil {
		t.Error("record survived Clear")
	}
}
