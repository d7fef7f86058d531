package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	domainRepo "github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/pagination"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, session *entity.InventorySession) error {
	return dbFrom(ctx, r.db).Create(session).Error
}

func (r *inventoryRepository) GetOpen(ctx context.Context) (*entity.InventorySession, error) {
	var session entity.InventorySession
	err := dbFrom(ctx, r.db).
		First(&session, "status = ?", enum.InventoryOpen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventorySession, error) {
	var session entity.InventorySession
	err := dbFrom(ctx, r.db).First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *inventoryRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.InventorySession, error) {
	var session entity.InventorySession
	err := dbFrom(ctx, r.db).
		Preload("Items").
		Preload("Items.Product").
		First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *inventoryRepository) Update(ctx context.Context, session *entity.InventorySession) error {
	return dbFrom(ctx, r.db).Save(session).Error
}

func (r *inventoryRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.InventorySession, int64, error) {
	var sessions []entity.InventorySession
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.InventorySession{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&sessions).Error

	return sessions, total, err
}

func (r *inventoryRepository) CreateItems(ctx context.Context, items []entity.InventoryItem) error {
	if len(items) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).CreateInBatches(items, 200).Error
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entity.InventoryItem) error {
	return dbFrom(ctx, r.db).Save(item).Error
}
