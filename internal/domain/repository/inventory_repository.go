package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// InventoryRepository defines the interface for inventory session data access
type InventoryRepository interface {
	Create(ctx context.Context, session *entity.InventorySession) error
	// GetOpen returns the currently open session, or nil when none exists.
	GetOpen(ctx context.Context) (*entity.InventorySession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventorySession, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.InventorySession, error)
	Update(ctx context.Context, session *entity.InventorySession) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.InventorySession, int64, error)
	CreateItems(ctx context.Context, items []entity.InventoryItem) error
	UpdateItem(ctx context.Context, item *entity.InventoryItem) error
}
