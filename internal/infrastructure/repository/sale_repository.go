package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	domainRepo "github.com/mkadima/resto-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return dbFrom(ctx, r.db).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := dbFrom(ctx, r.db).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := dbFrom(ctx, r.db).
		Preload("Items").
		Preload("Items.Product").
		Preload("Client").
		Preload("SaleSpace").
		Preload("KitchenOrder").
		Preload("DeliveryInfo").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetByTicketNo(ctx context.Context, ticketNo string) (*entity.Sale, error) {
	var sale entity.Sale
	err := dbFrom(ctx, r.db).
		Preload("Items").
		Preload("Items.Product").
		First(&sale, "ticket_no = ?", ticketNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Sale{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}
	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}
	if params.From != nil {
		query = query.Where("created_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("created_at <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Preload("Client").
		Order("created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

type kitchenRepository struct {
	db *gorm.DB
}

// NewKitchenRepository creates a new kitchen order repository
func NewKitchenRepository(db *gorm.DB) domainRepo.KitchenRepository {
	return &kitchenRepository{db: db}
}

func (r *kitchenRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error) {
	var order entity.KitchenOrder
	err := dbFrom(ctx, r.db).
		Preload("Sale").
		Preload("Sale.Items").
		Preload("Sale.Items.Product").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *kitchenRepository) GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.KitchenOrder, error) {
	var order entity.KitchenOrder
	err := dbFrom(ctx, r.db).First(&order, "sale_id = ?", saleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *kitchenRepository) Update(ctx context.Context, order *entity.KitchenOrder) error {
	return dbFrom(ctx, r.db).Save(order).Error
}

func (r *kitchenRepository) ListActive(ctx context.Context) ([]entity.KitchenOrder, error) {
	var orders []entity.KitchenOrder
	err := dbFrom(ctx, r.db).
		Where("status IN ?", []enum.KitchenStatus{enum.KitchenPending, enum.KitchenInPreparation}).
		Preload("Sale").
		Preload("Sale.Items").
		Preload("Sale.Items.Product").
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}
