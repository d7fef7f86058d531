package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
)

// KitchenService drives the kitchen display
type KitchenService struct {
	kitchenRepo repository.KitchenRepository
}

// NewKitchenService creates a new kitchen service
func NewKitchenService(kitchenRepo repository.KitchenRepository) *KitchenService {
	return &KitchenService{kitchenRepo: kitchenRepo}
}

// ListActive returns pending and in-preparation orders with their lines
func (s *KitchenService) ListActive(ctx context.Context) ([]entity.KitchenOrder, error) {
	return s.kitchenRepo.ListActive(ctx)
}

// GetOrder retrieves a kitchen order with its sale lines
func (s *KitchenService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error) {
	order, err := s.kitchenRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFound("Kitchen order")
	}
	return order, nil
}

// UpdateStatus sets the order's status. Any status can be set from any
// other; the kitchen corrects mistakes by setting the right one.
// IN_PREPARATION records the preparer and start time, DELIVERED the
// completion time.
func (s *KitchenService) UpdateStatus(ctx context.Context, orderID, userID uuid.UUID, status enum.KitchenStatus) (*entity.KitchenOrder, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequest("Unknown kitchen status")
	}

	order, err := s.kitchenRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFound("Kitchen order")
	}

	now := time.Now()
	order.Status = status
	switch status {
	case enum.KitchenInPreparation:
		order.PreparerID = &userID
		if order.StartedAt == nil {
			order.StartedAt = &now
		}
	case enum.KitchenDelivered:
		order.CompletedAt = &now
	}

	if err := s.kitchenRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
