package repository

import (
	"context"
	"time"

	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// RateRepository defines the interface for exchange rate versions.
type RateRepository interface {
	Create(ctx context.Context, rate *entity.ExchangeRate) error
	// Current returns the latest rate whose effective_from is not after
	// the given instant, or nil when no rate exists yet.
	Current(ctx context.Context, at time.Time) (*entity.ExchangeRate, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.ExchangeRate, int64, error)
}
