package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// SaleFilterParams holds filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination    *pagination.PaginationParams
	Status        *enum.SaleStatus
	PaymentMethod *enum.PaymentMethod
	ClientID      *uuid.UUID
	From          *time.Time
	To            *time.Time
}

// SaleRepository defines the interface for sale data access
type SaleRepository interface {
	// Create persists the sale with its nested items, kitchen order and
	// delivery info in one write.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByTicketNo(ctx context.Context, ticketNo string) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// KitchenRepository defines the interface for kitchen order data access
type KitchenRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error)
	GetBySaleID(ctx context.Context, saleID uuid.UUID) (*entity.KitchenOrder, error)
	Update(ctx context.Context, order *entity.KitchenOrder) error
	// ListActive returns pending and in-preparation orders with their
	// sale lines, oldest first, for the kitchen display.
	ListActive(ctx context.Context) ([]entity.KitchenOrder, error)
}
