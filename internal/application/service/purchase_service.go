package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
	"github.com/mkadima/resto-api/pkg/utils"
)

// PurchaseService receives goods from suppliers. Every received line
// lands on the stock ledger as an IN movement, in the same transaction
// as the purchase itself.
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	tx           repository.TxManager
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	tx repository.TxManager,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		tx:           tx,
	}
}

// PurchaseLineInput is one received line
type PurchaseLineInput struct {
	ProductID   uuid.UUID
	Quantity    float64
	UnitCostUSD int64 // cents
}

// CreatePurchaseInput represents the create purchase input
type CreatePurchaseInput struct {
	SupplierID uuid.UUID
	Location   enum.Location
	UserID     uuid.UUID
	Items      []PurchaseLineInput
}

// CreatePurchase records a goods receipt and raises stock at the
// purchase's location, one IN movement per line.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.Purchase, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequest("Purchase requires at least one line")
	}
	if !input.Location.Valid() {
		return nil, apperror.NewBadRequest("Unknown location")
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFound("Supplier")
	}

	productIDs := make([]uuid.UUID, len(input.Items))
	for i, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequest("Line quantity must be positive")
		}
		productIDs[i] = line.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	referenceNo := utils.GenerateReferenceNo("PUR")
	purchase := &entity.Purchase{
		ReferenceNo: referenceNo,
		SupplierID:  input.SupplierID,
		UserID:      input.UserID,
		Location:    input.Location,
	}
	for _, line := range input.Items {
		if _, exists := productMap[line.ProductID]; !exists {
			return nil, apperror.NewNotFound(fmt.Sprintf("Product %s", line.ProductID))
		}
		purchase.TotalUSD += int64(math.Round(float64(line.UnitCostUSD) * line.Quantity))
		purchase.Items = append(purchase.Items, entity.PurchaseItem{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			UnitCostUSD: line.UnitCostUSD,
		})
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}
		for _, line := range input.Items {
			if err := s.stockRepo.AddQuantity(ctx, line.ProductID, input.Location, line.Quantity); err != nil {
				return err
			}
			loc := input.Location
			movement := entity.StockMovement{
				ProductID:  line.ProductID,
				Type:       enum.MovementIn,
				Quantity:   line.Quantity,
				ToLocation: &loc,
				Reason:     referenceNo,
				UserID:     input.UserID,
				CostUSD:    int64(math.Round(float64(line.UnitCostUSD) * line.Quantity)),
			}
			if err := s.stockRepo.CreateMovement(ctx, &movement); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetWithItems(ctx, purchase.ID)
}

// GetPurchase retrieves a purchase with its lines
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFound("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchases, newest first
func (s *PurchaseService) ListPurchases(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}
