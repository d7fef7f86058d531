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
	"gorm.io/gorm/clause"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) GetItem(ctx context.Context, productID uuid.UUID, loc enum.Location) (*entity.StockItem, error) {
	var item entity.StockItem
	err := dbFrom(ctx, r.db).
		First(&item, "product_id = ? AND location = ?", productID, loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *stockRepository) ListItemsByProduct(ctx context.Context, productID uuid.UUID) ([]entity.StockItem, error) {
	var items []entity.StockItem
	err := dbFrom(ctx, r.db).
		Where("product_id = ?", productID).
		Order("location ASC").
		Find(&items).Error
	return items, err
}

func (r *stockRepository) ListItems(ctx context.Context, productID *uuid.UUID, loc *enum.Location, params *pagination.PaginationParams) ([]entity.StockItem, int64, error) {
	var items []entity.StockItem
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.StockItem{})

	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	if loc != nil {
		query = query.Where("location = ?", *loc)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Product").
		Order("updated_at DESC").
		Find(&items).Error

	return items, total, err
}

func (r *stockRepository) ListPositiveItems(ctx context.Context) ([]entity.StockItem, error) {
	var items []entity.StockItem
	err := dbFrom(ctx, r.db).
		Joins("JOIN products ON products.id = stock_items.product_id AND products.active = ? AND products.deleted_at IS NULL", true).
		Where("stock_items.quantity > 0").
		Preload("Product").
		Find(&items).Error
	return items, err
}

// AddQuantity upserts the (product, location) row, adding qty to whatever
// is already there.
func (r *stockRepository) AddQuantity(ctx context.Context, productID uuid.UUID, loc enum.Location, qty float64) error {
	item := entity.StockItem{
		ProductID: productID,
		Location:  loc,
		Quantity:  qty,
	}
	return dbFrom(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}, {Name: "location"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + excluded.quantity"),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&item).Error
}

// DeductIfEnough decrements atomically:
// UPDATE stock_items SET quantity = quantity - ? WHERE ... AND quantity >= ?
func (r *stockRepository) DeductIfEnough(ctx context.Context, productID uuid.UUID, loc enum.Location, qty float64) (bool, error) {
	result := dbFrom(ctx, r.db).Model(&entity.StockItem{}).
		Where("product_id = ? AND location = ? AND quantity >= ?", productID, loc, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *stockRepository) SetQuantity(ctx context.Context, productID uuid.UUID, loc enum.Location, qty float64) error {
	item := entity.StockItem{
		ProductID: productID,
		Location:  loc,
		Quantity:  qty,
	}
	return dbFrom(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "location"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(&item).Error
}

func (r *stockRepository) ResetAll(ctx context.Context) error {
	return dbFrom(ctx, r.db).Model(&entity.StockItem{}).
		Where("quantity <> 0").
		Update("quantity", 0).Error
}

func (r *stockRepository) CreateMovement(ctx context.Context, m *entity.StockMovement) error {
	return dbFrom(ctx, r.db).Create(m).Error
}

func (r *stockRepository) GetMovement(ctx context.Context, id uuid.UUID) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := dbFrom(ctx, r.db).
		Preload("Product").
		First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &m, err
}

func (r *stockRepository) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.StockMovement{}, "id = ?", id).Error
}

func (r *stockRepository) ListMovements(ctx context.Context, params *domainRepo.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	var movements []entity.StockMovement
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.StockMovement{})

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.Location != nil {
		query = query.Where("from_location = ? OR to_location = ?", *params.Location, *params.Location)
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
		Preload("Product").
		Order("created_at DESC").
		Find(&movements).Error

	return movements, total, err
}

// SumSignedMovements replays the ledger for one (product, location):
// inbound movements count positive, outbound negative.
func (r *stockRepository) SumSignedMovements(ctx context.Context, productID uuid.UUID, loc enum.Location) (float64, error) {
	var sum float64
	err := dbFrom(ctx, r.db).Model(&entity.StockMovement{}).
		Select(`COALESCE(SUM(
			CASE WHEN to_location = ? THEN quantity ELSE 0 END -
			CASE WHEN from_location = ? THEN quantity ELSE 0 END
		), 0)`, loc, loc).
		Where("product_id = ? AND (to_location = ? OR from_location = ?)", productID, loc, loc).
		Scan(&sum).Error
	return sum, err
}
