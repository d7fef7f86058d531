package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/cache"
	"github.com/mkadima/resto-api/pkg/pagination"
	"github.com/mkadima/resto-api/pkg/utils"
)

const vendableCacheKey = "products:vendable"

// ProductService handles catalog operations. The vendable list — the
// POS hot path — is cached; every catalog write invalidates it.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	cache        cache.Cache
	cacheTTL     time.Duration
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	c cache.Cache,
	cacheTTL time.Duration,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        c,
		cacheTTL:     cacheTTL,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name       string
	Code       string
	Type       enum.ProductType
	SaleUnit   enum.SaleUnit
	CategoryID *uuid.UUID
	Vendable   *bool
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequest("Unknown product type")
	}
	if !input.SaleUnit.Valid() {
		return nil, apperror.NewBadRequest("Unknown sale unit")
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFound("Category")
		}
	}

	slug := utils.Slugify(input.Name)
	if existing, err := s.productRepo.GetBySlug(ctx, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.NewConflict("A product with this name already exists")
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateProductCode()
	}

	vendable := input.Type != enum.ProductTypeNonVendable
	if input.Vendable != nil {
		vendable = *input.Vendable
	}

	product := &entity.Product{
		Name:       input.Name,
		Slug:       slug,
		Code:       code,
		Type:       input.Type,
		SaleUnit:   input.SaleUnit,
		CategoryID: input.CategoryID,
		Active:     true,
		Vendable:   vendable,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, vendableCacheKey)
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name       *string
	Type       *enum.ProductType
	SaleUnit   *enum.SaleUnit
	CategoryID *uuid.UUID
	Active     *bool
	Vendable   *bool
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFound("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, apperror.NewBadRequest("Unknown product type")
		}
		product.Type = *input.Type
	}
	if input.SaleUnit != nil {
		if !input.SaleUnit.Valid() {
			return nil, apperror.NewBadRequest("Unknown sale unit")
		}
		product.SaleUnit = *input.SaleUnit
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
	if input.Vendable != nil {
		product.Vendable = *input.Vendable
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, vendableCacheKey)
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFound("Product")
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, vendableCacheKey)
	return nil
}

// GetProduct retrieves a product with prices and costs
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFound("Product")
	}
	return product, nil
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ListVendable returns the sellable catalog, from cache when warm.
func (s *ProductService) ListVendable(ctx context.Context) ([]entity.Product, error) {
	if raw, ok, err := s.cache.Get(ctx, vendableCacheKey); err == nil && ok {
		var cached []entity.Product
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.ListVendable(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(products); err == nil {
		_ = s.cache.Set(ctx, vendableCacheKey, raw, s.cacheTTL)
	}
	return products, nil
}

// PriceInput represents a price row for one sale space and sale unit
type PriceInput struct {
	SaleSpaceID uuid.UUID
	SaleUnit    enum.SaleUnit
	AmountUSD   int64 // cents
	AmountCDF   int64 // whole francs
}

// SetPrice creates or replaces the product's price for a (space, unit) pair
func (s *ProductService) SetPrice(ctx context.Context, productID uuid.UUID, input *PriceInput) (*entity.ProductPrice, error) {
	if !input.SaleUnit.Valid() {
		return nil, apperror.NewBadRequest("Unknown sale unit")
	}
	if input.AmountUSD < 0 || input.AmountCDF < 0 {
		return nil, apperror.NewBadRequest("Price cannot be negative")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFound("Product")
	}

	price := &entity.ProductPrice{
		ProductID:   productID,
		SaleSpaceID: input.SaleSpaceID,
		SaleUnit:    input.SaleUnit,
		AmountUSD:   input.AmountUSD,
		AmountCDF:   input.AmountCDF,
	}
	if err := s.productRepo.UpsertPrice(ctx, price); err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, vendableCacheKey)
	return price, nil
}

// CostInput represents a cost row for one sale unit
type CostInput struct {
	SaleUnit  enum.SaleUnit
	AmountUSD int64 // cents
	AmountCDF int64 // whole francs
}

// SetCost creates or replaces the product's cost for a sale unit
func (s *ProductService) SetCost(ctx context.Context, productID uuid.UUID, input *CostInput) (*entity.ProductCost, error) {
	if !input.SaleUnit.Valid() {
		return nil, apperror.NewBadRequest("Unknown sale unit")
	}
	if input.AmountUSD < 0 || input.AmountCDF < 0 {
		return nil, apperror.NewBadRequest("Cost cannot be negative")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFound("Product")
	}

	cost := &entity.ProductCost{
		ProductID: productID,
		SaleUnit:  input.SaleUnit,
		AmountUSD: input.AmountUSD,
		AmountCDF: input.AmountCDF,
	}
	if err := s.productRepo.UpsertCost(ctx, cost); err != nil {
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, vendableCacheKey)
	return cost, nil
}

// DeletePrice removes a price line from the product
func (s *ProductService) DeletePrice(ctx context.Context, productID, priceID uuid.UUID) error {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return err
	}
	if err := s.productRepo.DeletePrice(ctx, priceID); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, vendableCacheKey)
	return nil
}

// DeleteCost removes a cost line from the product
func (s *ProductService) DeleteCost(ctx context.Context, productID, costID uuid.UUID) error {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return err
	}
	if err := s.productRepo.DeleteCost(ctx, costID); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, vendableCacheKey)
	return nil
}

func (s *ProductService) ensureProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFound("Product")
	}
	return nil
}
