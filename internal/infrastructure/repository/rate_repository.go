package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mkadima/resto-api/internal/domain/entity"
	domainRepo "github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/pagination"
	"gorm.io/gorm"
)

type rateRepository struct {
	db *gorm.DB
}

// NewRateRepository creates a new exchange rate repository
func NewRateRepository(db *gorm.DB) domainRepo.RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) Create(ctx context.Context, rate *entity.ExchangeRate) error {
	return dbFrom(ctx, r.db).Create(rate).Error
}

func (r *rateRepository) Current(ctx context.Context, at time.Time) (*entity.ExchangeRate, error) {
	var rate entity.ExchangeRate
	err := dbFrom(ctx, r.db).
		Where("effective_from <= ?", at).
		Order("effective_from DESC").
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &rate, err
}

func (r *rateRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.ExchangeRate, int64, error) {
	var rates []entity.ExchangeRate
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.ExchangeRate{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("effective_from DESC").
		Find(&rates).Error

	return rates, total, err
}
