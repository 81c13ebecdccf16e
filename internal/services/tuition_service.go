package services

import (
	"context"
	"errors"
	"log"

	"github.com/touhid12310/bdtuitions-android-ios/domain"
	"github.com/touhid12310/bdtuitions-android-ios/internal/infrastructure/cache"
)

// TuitionService serves tuition listings, writing fetched pages into the
// offline cache and falling back to cached rows when the network is down.
type TuitionService struct {
	backend domain.TuitionBackend
	cache   *cache.Cache
}

// NewTuitionService creates the listing service. cache may be nil; fallback
// is then disabled.
func NewTuitionService(backend domain.TuitionBackend, c *cache.Cache) *TuitionService {
	return &TuitionService{backend: backend, cache: c}
}

// List fetches a page of listings. fromCache reports whether the rows came
// from the offline cache because the backend was unreachable.
func (s *TuitionService) List(ctx context.Context, page, perPage int, filters domain.TuitionFilters) (tuitions []domain.Tuition, meta *domain.PageMeta, fromCache bool, err error) {
	tuitions, meta, err = s.backend.List(ctx, page, perPage, filters)
	if err == nil {
		if s.cache != nil {
			if cacheErr := s.cache.UpsertTuitions(tuitions); cacheErr != nil {
				log.Printf("tuition cache write failed: %v", cacheErr)
			}
		}
		return tuitions, meta, false, nil
	}

	if s.cache != nil && isOffline(err) {
		cached, cacheErr := s.cache.Tuitions()
		if cacheErr == nil && len(cached) > 0 {
			return cached, nil, true, nil
		}
	}
	return nil, nil, false, err
}

// Get fetches one tuition by id; no cache fallback for detail views.
func (s *TuitionService) Get(ctx context.Context, id uint) (*domain.Tuition, error) {
	return s.backend.Get(ctx, id)
}

// Apply submits an application against a tuition.
func (s *TuitionService) Apply(ctx context.Context, tuitionID uint, note string) (*domain.Application, error) {
	return s.backend.Apply(ctx, tuitionID, note)
}

// isOffline reports whether the error indicates the backend was unreachable
// rather than it rejecting the request.
func isOffline(err error) bool {
	return errors.Is(err, domain.ErrNetwork) || errors.Is(err, domain.ErrTimeout)
}
