package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// MovementFilterParams holds filtering parameters for movement queries
type MovementFilterParams struct {
	Pagination *pagination.PaginationParams
	ProductID  *uuid.UUID
	Type       *enum.MovementType
	Location   *enum.Location
	From       *time.Time
	To         *time.Time
}

// StockRepository defines the interface for the stock ledger: current
// quantities per (product, location) and the append-only movement log.
type StockRepository interface {
	// GetItem returns the stock item for (product, location), or nil.
	GetItem(ctx context.Context, productID uuid.UUID, loc enum.Location) (*entity.StockItem, error)
	// ListItemsByProduct returns all locations holding a row for the product.
	ListItemsByProduct(ctx context.Context, productID uuid.UUID) ([]entity.StockItem, error)
	// ListItems returns stock items with optional product/location filters.
	ListItems(ctx context.Context, productID *uuid.UUID, loc *enum.Location, params *pagination.PaginationParams) ([]entity.StockItem, int64, error)
	// ListPositiveItems returns every stock item with quantity > 0 whose
	// product is active (the inventory snapshot set).
	ListPositiveItems(ctx context.Context) ([]entity.StockItem, error)
	// AddQuantity adds qty (may create the row) at (product, location).
	AddQuantity(ctx context.Context, productID uuid.UUID, loc enum.Location, qty float64) error
	// DeductIfEnough decrements qty only if the row holds at least qty;
	// returns false when the guard fails.
	DeductIfEnough(ctx context.Context, productID uuid.UUID, loc enum.Location, qty float64) (bool, error)
	// SetQuantity overwrites the quantity (inventory reconciliation only).
	SetQuantity(ctx context.Context, productID uuid.UUID, loc enum.Location, qty float64) error
	// ResetAll zeroes every stock item. System wipe; not movement-logged.
	ResetAll(ctx context.Context) error

	CreateMovement(ctx context.Context, m *entity.StockMovement) error
	GetMovement(ctx context.Context, id uuid.UUID) (*entity.StockMovement, error)
	DeleteMovement(ctx context.Context, id uuid.UUID) error
	ListMovements(ctx context.Context, params *MovementFilterParams) ([]entity.StockMovement, int64, error)
	// SumSignedMovements returns the signed sum of all movements touching
	// (product, location); used by the stock audit report.
	SumSignedMovements(ctx context.Context, productID uuid.UUID, loc enum.Location) (float64, error)
}
