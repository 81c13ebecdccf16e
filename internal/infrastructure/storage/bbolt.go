// Package storage persists the session record and the install identity to a
// local bbolt database, the durable key-value store on device.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

const (
	bucketName = "auth"
	// sessionKey is the single fixed key the session record lives under.
	sessionKey = "auth-storage"
	deviceKey  = "device-id"
)

// BoltStore implements domain.SessionPersistence backed by a bbolt database.
type BoltStore struct {
	db *bolt.DB
}

var _ domain.SessionPersistence = (*BoltStore)(nil)

// NewBoltStore opens (or creates) the database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Save writes the session record under the fixed key.
func (s *BoltStore) Save(record *domain.PersistedSession) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding session record: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		return b.Put([]byte(sessionKey), data)
	})
}

// Load reads the session record. A missing record returns (nil, nil); the
// store rehydrates to an unauthenticated state.
func (s *BoltStore) Load() (*domain.PersistedSession, error) {
	var record *domain.PersistedSession
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		data := b.Get([]byte(sessionKey))
		if data == nil {
			return nil
		}
		record = &domain.PersistedSession{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("decoding session record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Clear removes the session record. Clearing an absent record is a no-op.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(sessionKey))
	})
}

// DeviceID returns the per-install identifier, generating and persisting one
// on first use. Regenerated only if the database is wiped.
func (s *BoltStore) DeviceID() (string, error) {
	var id string
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		if existing := b.Get([]byte(deviceKey)); existing != nil {
			id = string(existing)
			return nil
		}
		id = uuid.NewString()
		return b.Put([]byte(deviceKey), []byte(id))
	})
	if err != nil {
		return "", fmt.Errorf("resolving device id: %w", err)
	}
	return id, nil
}
