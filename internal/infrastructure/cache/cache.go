// Package cache keeps the most recently fetched tuition listings and
// notifications in a device-local sqlite database so list screens can render
// while offline.
package cache

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
)

// TuitionRecord is the cached shape of one tuition listing.
type TuitionRecord struct {
	ID               uint `gorm:"primaryKey"`
	TuitionCode      string
	City             string
	Area             string
	Class            string
	Medium           string
	PreferedSubjects string
	PreferedGender   string
	DayPerWeek       string
	Salary           float64
	MediaFee         float64
	Status           string
	HasApplied       bool
	CanApply         bool
	FetchedAt        time.Time
}

// NotificationRecord is the cached shape of one notification.
type NotificationRecord struct {
	ID        uint `gorm:"primaryKey"`
	Title     string
	Message   string
	Status    string
	IsRead    bool
	Date      string
	FetchedAt time.Time
}

// Cache wraps the sqlite store.
type Cache struct {
	db *gorm.DB
}

// Open opens (or creates) the cache database at path and migrates the schema.
func Open(path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}
	if err := db.AutoMigrate(&TuitionRecord{}, &NotificationRecord{}); err != nil {
		return nil, fmt.Errorf("migrating cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// UpsertTuitions replaces cached rows for the given listings.
func (c *Cache) UpsertTuitions(tuitions []domain.Tuition) error {
	if len(tuitions) == 0 {
		return nil
	}
	records := make([]TuitionRecord, 0, len(tuitions))
	now := time.Now()
	for _, t := range tuitions {
		records = append(records, TuitionRecord{
			ID:               t.ID,
			TuitionCode:      t.TuitionCode,
			City:             t.City,
			Area:             t.Area,
			Class:            t.Class,
			Medium:           t.Medium,
			PreferedSubjects: t.PreferedSubjects,
			PreferedGender:   t.PreferedGender,
			DayPerWeek:       t.DayPerWeek,
			Salary:           t.Salary,
			MediaFee:         t.MediaFee,
			Status:           t.Status,
			HasApplied:       t.HasApplied,
			CanApply:         t.CanApply,
			FetchedAt:        now,
		})
	}
	return c.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&records).Error
}

// Tuitions returns cached listings, newest fetch first.
func (c *Cache) Tuitions() ([]domain.Tuition, error) {
	var records []TuitionRecord
	if err := c.db.Order("fetched_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("reading cached tuitions: %w", err)
	}
	tuitions := make([]domain.Tuition, 0, len(records))
	for _, r := range records {
		tuitions = append(tuitions, domain.Tuition{
			ID:               r.ID,
			TuitionCode:      r.TuitionCode,
			City:             r.City,
			Area:             r.Area,
			Class:            r.Class,
			Medium:           r.Medium,
			PreferedSubjects: r.PreferedSubjects,
			PreferedGender:   r.PreferedGender,
			DayPerWeek:       r.DayPerWeek,
			Salary:           r.Salary,
			MediaFee:         r.MediaFee,
			Status:           r.Status,
			HasApplied:       r.HasApplied,
			CanApply:         r.CanApply,
		})
	}
	return tuitions, nil
}

// UpsertNotifications replaces cached rows for the given notifications.
func (c *Cache) UpsertNotifications(notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	records := make([]NotificationRecord, 0, len(notifications))
	now := time.Now()
	for _, n := range notifications {
		records = append(records, NotificationRecord{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Status:    n.Status,
			IsRead:    n.IsRead,
			Date:      n.Date,
			FetchedAt: now,
		})
	}
	return c.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&records).Error
}

// Notifications returns cached notifications, newest first.
func (c *Cache) Notifications() ([]domain.Notification, error) {
	var records []NotificationRecord
	if err := c.db.Order("id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("reading cached notifications: %w", err)
	}
	notifications := make([]domain.Notification, 0, len(records))
	for _, r := range records {
		notifications = append(notifications, domain.Notification{
			ID:      r.ID,
			Title:   r.Title,
			Message: r.Message,
			Status:  r.Status,
			IsRead:  r.IsRead,
			Date:    r.Date,
		})
	}
	return notifications, nil
}

// Purge drops all cached rows; called on logout so the next account does not
// see the previous account's data.
func (c *Cache) Purge() error {
	if err := c.db.Where("1 = 1").Delete(&TuitionRecord{}).Error; err != nil {
		return err
	}
	return c.db.Where("1 = 1").Delete(&NotificationRecord{}).Error
}
