package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// InventoryService runs count-and-reconcile sessions against the stock
// ledger.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	stockRepo     repository.StockRepository
	tx            repository.TxManager
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	stockRepo repository.StockRepository,
	tx repository.TxManager,
) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		stockRepo:     stockRepo,
		tx:            tx,
	}
}

// OpenSession snapshots expected quantities for every stocked line of an
// active product. Only one session may be open at a time.
func (s *InventoryService) OpenSession(ctx context.Context, userID uuid.UUID) (*entity.InventorySession, error) {
	open, err := s.inventoryRepo.GetOpen(ctx)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperror.NewConflict("An inventory session is already open")
	}

	session := &entity.InventorySession{
		Status:     enum.InventoryOpen,
		OpenedByID: userID,
		OpenedAt:   time.Now(),
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.inventoryRepo.Create(ctx, session); err != nil {
			return err
		}

		stockItems, err := s.stockRepo.ListPositiveItems(ctx)
		if err != nil {
			return err
		}
		lines := make([]entity.InventoryItem, 0, len(stockItems))
		for _, item := range stockItems {
			lines = append(lines, entity.InventoryItem{
				SessionID:        session.ID,
				ProductID:        item.ProductID,
				Location:         item.Location,
				ExpectedQuantity: item.Quantity,
			})
		}
		return s.inventoryRepo.CreateItems(ctx, lines)
	})
	if err != nil {
		return nil, err
	}

	return s.inventoryRepo.GetWithItems(ctx, session.ID)
}

// CountInput is one counted line submitted during a session
type CountInput struct {
	ProductID uuid.UUID
	Location  enum.Location
	Actual    float64
}

// RecordCounts stores actual quantities on an open session's lines.
// Lines absent from the snapshot are rejected; counting happens against
// the opening snapshot, not live stock.
func (s *InventoryService) RecordCounts(ctx context.Context, sessionID uuid.UUID, counts []CountInput) (*entity.InventorySession, error) {
	session, err := s.inventoryRepo.GetWithItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFound("Inventory session")
	}
	if session.Status != enum.InventoryOpen {
		return nil, apperror.NewConflict("Inventory session is closed")
	}

	type lineKey struct {
		product  uuid.UUID
		location enum.Location
	}
	lineMap := make(map[lineKey]*entity.InventoryItem, len(session.Items))
	for i := range session.Items {
		item := &session.Items[i]
		lineMap[lineKey{item.ProductID, item.Location}] = item
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		for _, count := range counts {
			if count.Actual < 0 {
				return apperror.NewBadRequest("Counted quantity cannot be negative")
			}
			item, ok := lineMap[lineKey{count.ProductID, count.Location}]
			if !ok {
				return apperror.NewBadRequest(
					fmt.Sprintf("No snapshot line for product %s at %s", count.ProductID, count.Location))
			}
			item.ActualQuantity = count.Actual
			item.Variance = count.Actual - item.ExpectedQuantity
			if err := s.inventoryRepo.UpdateItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.inventoryRepo.GetWithItems(ctx, sessionID)
}

// CloseSession reconciles every counted line against live stock: a
// shortfall becomes a LOSS movement, a surplus an ADJUSTMENT movement,
// and the stock quantity is overwritten with the counted value. The
// session records the signed sum of all variances.
func (s *InventoryService) CloseSession(ctx context.Context, sessionID, userID uuid.UUID) (*entity.InventorySession, error) {
	session, err := s.inventoryRepo.GetWithItems(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFound("Inventory session")
	}
	if session.Status != enum.InventoryOpen {
		return nil, apperror.NewConflict("Inventory session is already closed")
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		var totalVariance float64
		for i := range session.Items {
			item := &session.Items[i]
			variance := item.ActualQuantity - item.ExpectedQuantity
			item.Variance = variance
			totalVariance += variance

			if variance == 0 {
				continue
			}

			loc := item.Location
			movement := entity.StockMovement{
				ProductID: item.ProductID,
				Quantity:  variance,
				Reason:    fmt.Sprintf("Inventory %s", session.ID),
				UserID:    userID,
			}
			if variance < 0 {
				movement.Type = enum.MovementLoss
				movement.Quantity = -variance
				movement.FromLocation = &loc
			} else {
				movement.Type = enum.MovementAdjustment
				movement.ToLocation = &loc
			}
			if err := s.stockRepo.CreateMovement(ctx, &movement); err != nil {
				return err
			}
			if err := s.stockRepo.SetQuantity(ctx, item.ProductID, loc, item.ActualQuantity); err != nil {
				return err
			}
			if err := s.inventoryRepo.UpdateItem(ctx, item); err != nil {
				return err
			}
		}

		now := time.Now()
		session.Status = enum.InventoryClosed
		session.ClosedByID = &userID
		session.ClosedAt = &now
		session.TotalVariance = totalVariance
		return s.inventoryRepo.Update(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	return s.inventoryRepo.GetWithItems(ctx, sessionID)
}

// GetSession retrieves a session with its lines
func (s *InventoryService) GetSession(ctx context.Context, id uuid.UUID) (*entity.InventorySession, error) {
	session, err := s.inventoryRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFound("Inventory session")
	}
	return session, nil
}

// ListSessions lists past and present sessions
func (s *InventoryService) ListSessions(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.InventorySession], error) {
	sessions, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sessions, pag), nil
}
