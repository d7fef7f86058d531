package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	domainRepo "github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return dbFrom(ctx, r.db).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := dbFrom(ctx, r.db).
		Preload("Category").Preload("Prices").Preload("Costs").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product entity.Product
	err := dbFrom(ctx, r.db).
		Preload("Category").Preload("Prices").Preload("Costs").
		First(&product, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// GetByIDs retrieves multiple products by their IDs in a single query
func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := dbFrom(ctx, r.db).
		Preload("Prices").Preload("Costs").
		Where("id IN ?", ids).
		Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return dbFrom(ctx, r.db).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Product{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Vendable != nil {
		query = query.Where("vendable = ?", *params.Vendable)
	}

	if params.Active != nil {
		query = query.Where("active = ?", *params.Active)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").Preload("Prices").Preload("Costs").
		Order("name ASC").
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) ListVendable(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := dbFrom(ctx, r.db).
		Where("vendable = ? AND active = ?", true, true).
		Preload("Category").Preload("Prices").Preload("Costs").
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) UpsertPrice(ctx context.Context, price *entity.ProductPrice) error {
	return dbFrom(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "sale_space_id"}, {Name: "sale_unit"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount_usd", "amount_cdf", "updated_at"}),
	}).Create(price).Error
}

func (r *productRepository) DeletePrice(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.ProductPrice{}, "id = ?", id).Error
}

func (r *productRepository) UpsertCost(ctx context.Context, cost *entity.ProductCost) error {
	return dbFrom(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "sale_unit"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount_usd", "amount_cdf", "updated_at"}),
	}).Create(cost).Error
}

func (r *productRepository) DeleteCost(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.ProductCost{}, "id = ?", id).Error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return dbFrom(ctx, r.db).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := dbFrom(ctx, r.db).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var category entity.Category
	err := dbFrom(ctx, r.db).First(&category, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return dbFrom(ctx, r.db).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Category{}, "id = ?", id).Error
}

func (r *categoryRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Category, int64, error) {
	var categories []entity.Category
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Category{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&categories).Error

	return categories, total, err
}

type saleSpaceRepository struct {
	db *gorm.DB
}

// NewSaleSpaceRepository creates a new sale space repository
func NewSaleSpaceRepository(db *gorm.DB) domainRepo.SaleSpaceRepository {
	return &saleSpaceRepository{db: db}
}

func (r *saleSpaceRepository) Create(ctx context.Context, space *entity.SaleSpace) error {
	return dbFrom(ctx, r.db).Create(space).Error
}

func (r *saleSpaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleSpace, error) {
	var space entity.SaleSpace
	err := dbFrom(ctx, r.db).First(&space, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &space, err
}

func (r *saleSpaceRepository) Update(ctx context.Context, space *entity.SaleSpace) error {
	return dbFrom(ctx, r.db).Save(space).Error
}

func (r *saleSpaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.SaleSpace{}, "id = ?", id).Error
}

func (r *saleSpaceRepository) List(ctx context.Context) ([]entity.SaleSpace, error) {
	var spaces []entity.SaleSpace
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&spaces).Error
	return spaces, err
}
