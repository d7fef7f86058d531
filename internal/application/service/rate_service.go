package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/cache"
	"github.com/mkadima/resto-api/pkg/pagination"
)

const rateCacheKey = "rate:current"

// RateService manages exchange rate versions. The current rate is
// cached; setting a new rate invalidates the cache.
type RateService struct {
	rateRepo     repository.RateRepository
	cache        cache.Cache
	cacheTTL     time.Duration
	fallbackRate float64
}

// NewRateService creates a new rate service
func NewRateService(rateRepo repository.RateRepository, c cache.Cache, cacheTTL time.Duration, fallbackRate float64) *RateService {
	return &RateService{
		rateRepo:     rateRepo,
		cache:        c,
		cacheTTL:     cacheTTL,
		fallbackRate: fallbackRate,
	}
}

// SetRate creates a new rate version. Rates are never edited; the new
// version supersedes older ones from its effective instant.
func (s *RateService) SetRate(ctx context.Context, rate float64, effectiveFrom time.Time, userID uuid.UUID) (*entity.ExchangeRate, error) {
	if rate <= 0 {
		return nil, apperror.NewBadRequest("Rate must be positive")
	}
	if effectiveFrom.IsZero() {
		effectiveFrom = time.Now()
	}

	version := &entity.ExchangeRate{
		Rate:          rate,
		EffectiveFrom: effectiveFrom,
		CreatedByID:   userID,
	}
	if err := s.rateRepo.Create(ctx, version); err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, rateCacheKey)
	return version, nil
}

// CurrentRate returns the rate in effect now, falling back to the
// configured constant when no version exists yet.
func (s *RateService) CurrentRate(ctx context.Context) (*entity.ExchangeRate, error) {
	if raw, ok, err := s.cache.Get(ctx, rateCacheKey); err == nil && ok {
		var cached entity.ExchangeRate
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	current, err := s.rateRepo.Current(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = &entity.ExchangeRate{Rate: s.fallbackRate, EffectiveFrom: time.Time{}}
	}

	if raw, err := json.Marshal(current); err == nil {
		_ = s.cache.Set(ctx, rateCacheKey, raw, s.cacheTTL)
	}
	return current, nil
}

// ListRates lists rate versions, newest first
func (s *RateService) ListRates(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ExchangeRate], error) {
	rates, total, err := s.rateRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(rates, pag), nil
}
