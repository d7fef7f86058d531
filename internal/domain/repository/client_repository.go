package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// ClientRepository defines the interface for loyalty client data access
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
	// AddPoints applies a signed delta to the client's point balance.
	AddPoints(ctx context.Context, id uuid.UUID, delta int64) error
	CreateTransaction(ctx context.Context, tx *entity.LoyaltyTransaction) error
	ListTransactions(ctx context.Context, clientID uuid.UUID, params *pagination.PaginationParams) ([]entity.LoyaltyTransaction, int64, error)
}
