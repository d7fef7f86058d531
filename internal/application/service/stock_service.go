package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// StockService owns the stock ledger: every quantity change goes through
// one of its operations, and every operation pairs the quantity change
// with exactly one movement row inside one transaction.
type StockService struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
	tx          repository.TxManager
}

// NewStockService creates a new stock service
func NewStockService(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	tx repository.TxManager,
) *StockService {
	return &StockService{
		stockRepo:   stockRepo,
		productRepo: productRepo,
		tx:          tx,
	}
}

// ReceiveInput represents a goods receipt into one location
type ReceiveInput struct {
	ProductID uuid.UUID
	Location  enum.Location
	Quantity  float64
	Reason    string
	UserID    uuid.UUID
	CostUSD   int64 // cents, optional
}

// Receive raises stock at a location and logs an IN movement.
func (s *StockService) Receive(ctx context.Context, input *ReceiveInput) (*entity.StockMovement, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequest("Quantity must be positive")
	}
	if !input.Location.Valid() {
		return nil, apperror.NewBadRequest("Unknown location")
	}
	if err := s.ensureProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	loc := input.Location
	movement := &entity.StockMovement{
		ProductID:  input.ProductID,
		Type:       enum.MovementIn,
		Quantity:   input.Quantity,
		ToLocation: &loc,
		Reason:     input.Reason,
		UserID:     input.UserID,
		CostUSD:    input.CostUSD,
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.stockRepo.AddQuantity(ctx, input.ProductID, loc, input.Quantity); err != nil {
			return err
		}
		return s.stockRepo.CreateMovement(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// TransferInput represents a stock move between two locations
type TransferInput struct {
	ProductID uuid.UUID
	From      enum.Location
	To        enum.Location
	Quantity  float64
	Reason    string
	UserID    uuid.UUID
}

// Transfer moves stock between locations and logs a TRANSFER movement.
func (s *StockService) Transfer(ctx context.Context, input *TransferInput) (*entity.StockMovement, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequest("Quantity must be positive")
	}
	if !input.From.Valid() || !input.To.Valid() {
		return nil, apperror.NewBadRequest("Unknown location")
	}
	if input.From == input.To {
		return nil, apperror.NewBadRequest("Transfer requires two distinct locations")
	}
	if err := s.ensureProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	from, to := input.From, input.To
	movement := &entity.StockMovement{
		ProductID:    input.ProductID,
		Type:         enum.MovementTransfer,
		Quantity:     input.Quantity,
		FromLocation: &from,
		ToLocation:   &to,
		Reason:       input.Reason,
		UserID:       input.UserID,
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		ok, err := s.stockRepo.DeductIfEnough(ctx, input.ProductID, from, input.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewInsufficientStock(fmt.Sprintf("Insufficient stock at %s", from))
		}
		if err := s.stockRepo.AddQuantity(ctx, input.ProductID, to, input.Quantity); err != nil {
			return err
		}
		return s.stockRepo.CreateMovement(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// LossInput represents recorded breakage, spoilage or theft
type LossInput struct {
	ProductID uuid.UUID
	Location  enum.Location
	Quantity  float64
	Reason    string
	UserID    uuid.UUID
}

// Loss lowers stock at a location and logs a LOSS movement.
func (s *StockService) Loss(ctx context.Context, input *LossInput) (*entity.StockMovement, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequest("Quantity must be positive")
	}
	if !input.Location.Valid() {
		return nil, apperror.NewBadRequest("Unknown location")
	}
	if err := s.ensureProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	loc := input.Location
	movement := &entity.StockMovement{
		ProductID:    input.ProductID,
		Type:         enum.MovementLoss,
		Quantity:     input.Quantity,
		FromLocation: &loc,
		Reason:       input.Reason,
		UserID:       input.UserID,
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		ok, err := s.stockRepo.DeductIfEnough(ctx, input.ProductID, loc, input.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewInsufficientStock(fmt.Sprintf("Insufficient stock at %s", loc))
		}
		return s.stockRepo.CreateMovement(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// AdjustInput represents a signed correction or an initial stock entry
type AdjustInput struct {
	ProductID uuid.UUID
	Location  enum.Location
	Delta     float64 // positive raises stock, negative lowers it
	Reason    string
	UserID    uuid.UUID
}

// Adjust applies a signed correction and logs an ADJUSTMENT movement.
func (s *StockService) Adjust(ctx context.Context, input *AdjustInput) (*entity.StockMovement, error) {
	if input.Delta == 0 {
		return nil, apperror.NewBadRequest("Adjustment delta must be non-zero")
	}
	if !input.Location.Valid() {
		return nil, apperror.NewBadRequest("Unknown location")
	}
	if err := s.ensureProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	loc := input.Location
	movement := &entity.StockMovement{
		ProductID: input.ProductID,
		Type:      enum.MovementAdjustment,
		Reason:    input.Reason,
		UserID:    input.UserID,
	}
	if input.Delta > 0 {
		movement.Quantity = input.Delta
		movement.ToLocation = &loc
	} else {
		movement.Quantity = -input.Delta
		movement.FromLocation = &loc
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if input.Delta > 0 {
			if err := s.stockRepo.AddQuantity(ctx, input.ProductID, loc, input.Delta); err != nil {
				return err
			}
		} else {
			ok, err := s.stockRepo.DeductIfEnough(ctx, input.ProductID, loc, -input.Delta)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.NewInsufficientStock(fmt.Sprintf("Insufficient stock at %s", loc))
			}
		}
		return s.stockRepo.CreateMovement(ctx, movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// Deduct takes quantity out of stock walking the product type's location
// priority list, falling back to any other stocked location. The whole
// deduction fails with InsufficientStock when the product's total across
// all locations is short.
func (s *StockService) Deduct(ctx context.Context, productID uuid.UUID, quantity float64, reason string, userID uuid.UUID) ([]entity.StockMovement, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequest("Quantity must be positive")
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFound("Product")
	}

	var movements []entity.StockMovement
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		items, err := s.stockRepo.ListItemsByProduct(ctx, productID)
		if err != nil {
			return err
		}

		byLocation := make(map[enum.Location]float64, len(items))
		var total float64
		for _, item := range items {
			byLocation[item.Location] = item.Quantity
			total += item.Quantity
		}
		if total < quantity {
			return apperror.NewInsufficientStock(
				fmt.Sprintf("Insufficient stock for %s: need %g, have %g", product.Name, quantity, total))
		}

		remaining := quantity
		for _, loc := range deductionOrder(product.Type, byLocation) {
			if remaining <= 0 {
				break
			}
			available := byLocation[loc]
			if available <= 0 {
				continue
			}
			take := available
			if take > remaining {
				take = remaining
			}
			ok, err := s.stockRepo.DeductIfEnough(ctx, productID, loc, take)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.NewInsufficientStock(fmt.Sprintf("Insufficient stock at %s", loc))
			}

			from := loc
			movement := entity.StockMovement{
				ProductID:    productID,
				Type:         enum.MovementOut,
				Quantity:     take,
				FromLocation: &from,
				Reason:       reason,
				UserID:       userID,
			}
			if err := s.stockRepo.CreateMovement(ctx, &movement); err != nil {
				return err
			}
			movements = append(movements, movement)
			remaining -= take
		}

		if remaining > 0 {
			return apperror.New(apperror.KindInternal,
				fmt.Sprintf("Stock walk left %g undeducted for %s", remaining, product.Name))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return movements, nil
}

// deductionOrder returns the product type's priority locations followed
// by every other stocked location in a stable order.
func deductionOrder(t enum.ProductType, byLocation map[enum.Location]float64) []enum.Location {
	order := append([]enum.Location{}, enum.DeductionPriority(t)...)
	seen := make(map[enum.Location]bool, len(order))
	for _, loc := range order {
		seen[loc] = true
	}

	var rest []enum.Location
	for loc := range byLocation {
		if !seen[loc] {
			rest = append(rest, loc)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(order, rest...)
}

// ReverseMovement undoes a movement's stock effect and deletes the row.
// The ledger loses the entry, which breaks replayability for the rows
// before it; a warning is logged so the deletion is visible.
func (s *StockService) ReverseMovement(ctx context.Context, movementID uuid.UUID) error {
	movement, err := s.stockRepo.GetMovement(ctx, movementID)
	if err != nil {
		return err
	}
	if movement == nil {
		return apperror.NewNotFound("Movement")
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if movement.ToLocation != nil {
			ok, err := s.stockRepo.DeductIfEnough(ctx, movement.ProductID, *movement.ToLocation, movement.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.NewInsufficientStock(
					fmt.Sprintf("Cannot reverse: insufficient stock at %s", *movement.ToLocation))
			}
		}
		if movement.FromLocation != nil {
			if err := s.stockRepo.AddQuantity(ctx, movement.ProductID, *movement.FromLocation, movement.Quantity); err != nil {
				return err
			}
		}
		return s.stockRepo.DeleteMovement(ctx, movementID)
	})
	if err != nil {
		return err
	}

	log.Printf("Warning: movement %s (%s %g of product %s) reversed and deleted from the ledger",
		movementID, movement.Type, movement.Quantity, movement.ProductID)
	return nil
}

// ResetAll zeroes every stock quantity without writing movements.
func (s *StockService) ResetAll(ctx context.Context) error {
	if err := s.stockRepo.ResetAll(ctx); err != nil {
		return err
	}
	log.Printf("Warning: all stock quantities reset to zero without ledger entries")
	return nil
}

// GetProductStock returns the stock rows for one product.
func (s *StockService) GetProductStock(ctx context.Context, productID uuid.UUID) ([]entity.StockItem, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.stockRepo.ListItemsByProduct(ctx, productID)
}

// ListStock lists stock rows with optional product/location filters.
func (s *StockService) ListStock(ctx context.Context, productID *uuid.UUID, loc *enum.Location, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StockItem], error) {
	items, total, err := s.stockRepo.ListItems(ctx, productID, loc, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// ListMovements lists ledger entries with filters.
func (s *StockService) ListMovements(ctx context.Context, params *repository.MovementFilterParams) (*pagination.PaginatedResult[entity.StockMovement], error) {
	movements, total, err := s.stockRepo.ListMovements(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(movements, pag), nil
}

// AuditLine compares one stock row against its ledger replay.
type AuditLine struct {
	Location  enum.Location `json:"location"`
	Quantity  float64       `json:"quantity"`
	LedgerSum float64       `json:"ledger_sum"`
	Delta     float64       `json:"delta"`
}

// Audit replays the movement log per location for one product and
// reports any drift from the stored quantities. Drift appears only
// after reversals or resets.
func (s *StockService) Audit(ctx context.Context, productID uuid.UUID) ([]AuditLine, error) {
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}
	items, err := s.stockRepo.ListItemsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	lines := make([]AuditLine, 0, len(items))
	for _, item := range items {
		sum, err := s.stockRepo.SumSignedMovements(ctx, productID, item.Location)
		if err != nil {
			return nil, err
		}
		lines = append(lines, AuditLine{
			Location:  item.Location,
			Quantity:  item.Quantity,
			LedgerSum: sum,
			Delta:     item.Quantity - sum,
		})
	}
	return lines, nil
}

func (s *StockService) ensureProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFound("Product")
	}
	return nil
}
