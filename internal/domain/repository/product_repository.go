package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// ProductFilterParams holds filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *uuid.UUID
	Type       *enum.ProductType
	Vendable   *bool
	Active     *bool
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	ListVendable(ctx context.Context) ([]entity.Product, error)

	UpsertPrice(ctx context.Context, price *entity.ProductPrice) error
	DeletePrice(ctx context.Context, id uuid.UUID) error
	UpsertCost(ctx context.Context, cost *entity.ProductCost) error
	DeleteCost(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Category, int64, error)
}

// SaleSpaceRepository defines the interface for sale space data access
type SaleSpaceRepository interface {
	Create(ctx context.Context, space *entity.SaleSpace) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleSpace, error)
	Update(ctx context.Context, space *entity.SaleSpace) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.SaleSpace, error)
}
