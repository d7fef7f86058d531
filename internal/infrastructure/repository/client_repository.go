package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	domainRepo "github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/pagination"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) domainRepo.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return dbFrom(ctx, r.db).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := dbFrom(ctx, r.db).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &client, err
}

func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	return dbFrom(ctx, r.db).Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Client{}, "id = ?", id).Error
}

func (r *clientRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	var clients []entity.Client
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Client{})

	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&clients).Error

	return clients, total, err
}

func (r *clientRepository) AddPoints(ctx context.Context, id uuid.UUID, delta int64) error {
	return dbFrom(ctx, r.db).Model(&entity.Client{}).
		Where("id = ?", id).
		Update("points", gorm.Expr("points + ?", delta)).Error
}

func (r *clientRepository) CreateTransaction(ctx context.Context, tx *entity.LoyaltyTransaction) error {
	return dbFrom(ctx, r.db).Create(tx).Error
}

func (r *clientRepository) ListTransactions(ctx context.Context, clientID uuid.UUID, params *pagination.PaginationParams) ([]entity.LoyaltyTransaction, int64, error) {
	var txs []entity.LoyaltyTransaction
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.LoyaltyTransaction{}).
		Where("client_id = ?", clientID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&txs).Error

	return txs, total, err
}
