package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
	"github.com/mkadima/resto-api/pkg/utils"
)

// SaleService handles sale settlement and lookups
type SaleService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	clientRepo  repository.ClientRepository
	rateRepo    repository.RateRepository
	tx          repository.TxManager

	fallbackRate      float64
	pointsEarnDivisor int64
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	clientRepo repository.ClientRepository,
	rateRepo repository.RateRepository,
	tx repository.TxManager,
	fallbackRate float64,
	pointsEarnDivisor int64,
) *SaleService {
	return &SaleService{
		saleRepo:          saleRepo,
		productRepo:       productRepo,
		stockRepo:         stockRepo,
		clientRepo:        clientRepo,
		rateRepo:          rateRepo,
		tx:                tx,
		fallbackRate:      fallbackRate,
		pointsEarnDivisor: pointsEarnDivisor,
	}
}

// SaleLineInput is one requested line on a settlement
type SaleLineInput struct {
	ProductID uuid.UUID
	Quantity  float64
}

// DeliveryInput holds delivery details for a DELIVERY sale
type DeliveryInput struct {
	Address string
	Phone   string
	FeeUSD  int64 // cents
}

// SettleSaleInput represents the settle sale input
type SettleSaleInput struct {
	UserID        uuid.UUID
	ClientID      *uuid.UUID
	SaleSpaceID   *uuid.UUID
	PaymentMethod enum.PaymentMethod
	OrderType     enum.OrderType
	Delivery      *DeliveryInput
	Items         []SaleLineInput
}

// SettleSale runs the settlement protocol in one transaction: stock is
// checked per line at the product type's default location only, the
// sale is persisted with price and cost snapshots, stock is decremented
// with paired OUT movements, and loyalty points are applied. Any
// failure rolls the whole settlement back.
func (s *SaleService) SettleSale(ctx context.Context, input *SettleSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequest("Sale requires at least one line")
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequest("Unknown payment method")
	}
	if !input.OrderType.Valid() {
		return nil, apperror.NewBadRequest("Unknown order type")
	}
	if input.OrderType == enum.OrderDelivery && input.Delivery == nil {
		return nil, apperror.NewBadRequest("Delivery sale requires delivery details")
	}
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequest("Line quantity must be positive")
		}
	}

	var client *entity.Client
	if input.ClientID != nil {
		var err error
		client, err = s.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, apperror.NewNotFound("Client")
		}
	}
	if input.PaymentMethod == enum.PaymentPoints && client == nil {
		return nil, apperror.NewBadRequest("Points payment requires a client")
	}

	productIDs := make([]uuid.UUID, len(input.Items))
	for i, line := range input.Items {
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

	// Build the lines: price/cost snapshots plus the default-location
	// stock plan. Stock is checked and later decremented at the default
	// location only; other locations never cover a short line here.
	type linePlan struct {
		item     entity.SaleItem
		location enum.Location
	}

	var totalBrut, totalCost int64
	plans := make([]linePlan, 0, len(input.Items))
	for _, line := range input.Items {
		product, exists := productMap[line.ProductID]
		if !exists {
			return nil, apperror.NewNotFound(fmt.Sprintf("Product %s", line.ProductID))
		}
		if !product.Active || !product.Vendable {
			return nil, apperror.NewBadRequest(fmt.Sprintf("%s is not sellable", product.Name))
		}

		price := resolvePrice(product, input.SaleSpaceID)
		if price == nil {
			return nil, apperror.NewBadRequest(fmt.Sprintf("No price configured for %s", product.Name))
		}

		var unitCost int64
		if cost := product.CostFor(product.SaleUnit); cost != nil {
			unitCost = cost.AmountUSD
		}

		lineTotal := int64(math.Round(float64(price.AmountUSD) * line.Quantity))
		totalBrut += lineTotal
		totalCost += int64(math.Round(float64(unitCost) * line.Quantity))

		location := enum.DefaultLocation(product.Type)
		stock, err := s.stockRepo.GetItem(ctx, product.ID, location)
		if err != nil {
			return nil, err
		}
		available := 0.0
		if stock != nil {
			available = stock.Quantity
		}
		if available < line.Quantity {
			return nil, apperror.NewInsufficientStock(
				fmt.Sprintf("Insufficient stock for %s at %s: need %g, have %g",
					product.Name, location, line.Quantity, available))
		}

		plans = append(plans, linePlan{
			item: entity.SaleItem{
				ProductID:    product.ID,
				Quantity:     line.Quantity,
				UnitPriceUSD: price.AmountUSD,
				UnitCostUSD:  unitCost,
				TotalUSD:     lineTotal,
			},
			location: location,
		})
	}

	rate := s.fallbackRate
	if current, err := s.rateRepo.Current(ctx, time.Now()); err != nil {
		return nil, err
	} else if current != nil {
		rate = current.Rate
	}

	totalNet := totalBrut
	totalCDF := int64(math.Round(float64(totalNet) / 100 * rate))

	// Earned points are computed for every sale and recorded on the
	// ticket; the wallet is credited only when a client is attached.
	pointsEarned := totalCDF / s.pointsEarnDivisor
	var pointsUsed int64
	if input.PaymentMethod == enum.PaymentPoints {
		pointsUsed = totalNet / 100 / 10 * 10
		if client.Points < pointsUsed {
			return nil, apperror.NewConflict(
				fmt.Sprintf("Client has %d points, %d required", client.Points, pointsUsed))
		}
	}

	ticketNo := utils.GenerateTicketNo()
	sale := &entity.Sale{
		TicketNo:      ticketNo,
		UserID:        input.UserID,
		ClientID:      input.ClientID,
		SaleSpaceID:   input.SaleSpaceID,
		Status:        enum.SaleStatusCompleted,
		PaymentMethod: input.PaymentMethod,
		OrderType:     input.OrderType,
		TotalBrutUSD:  totalBrut,
		TotalNetUSD:   totalNet,
		TotalCDF:      totalCDF,
		CostUSD:       totalCost,
		PointsEarned:  pointsEarned,
		PointsUsed:    pointsUsed,
		ExchangeRate:  rate,
	}
	for _, plan := range plans {
		sale.Items = append(sale.Items, plan.item)
	}
	sale.KitchenOrder = &entity.KitchenOrder{Status: enum.KitchenPending}
	if input.OrderType == enum.OrderDelivery {
		sale.DeliveryInfo = &entity.DeliveryInfo{
			Address: input.Delivery.Address,
			Phone:   input.Delivery.Phone,
			FeeUSD:  input.Delivery.FeeUSD,
		}
	}

	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		for _, plan := range plans {
			ok, err := s.stockRepo.DeductIfEnough(ctx, plan.item.ProductID, plan.location, plan.item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.NewInsufficientStock(
					fmt.Sprintf("Insufficient stock at %s", plan.location))
			}
			from := plan.location
			movement := entity.StockMovement{
				ProductID:    plan.item.ProductID,
				Type:         enum.MovementOut,
				Quantity:     plan.item.Quantity,
				FromLocation: &from,
				Reason:       ticketNo,
				UserID:       input.UserID,
				CostUSD:      int64(math.Round(float64(plan.item.UnitCostUSD) * plan.item.Quantity)),
			}
			if err := s.stockRepo.CreateMovement(ctx, &movement); err != nil {
				return err
			}
		}

		delta := pointsEarned - pointsUsed
		if client != nil && delta != 0 {
			if err := s.clientRepo.AddPoints(ctx, client.ID, delta); err != nil {
				return err
			}
			saleID := sale.ID
			loyalty := entity.LoyaltyTransaction{
				ClientID: client.ID,
				SaleID:   &saleID,
				Delta:    delta,
				Reason:   fmt.Sprintf("Sale %s", ticketNo),
			}
			if err := s.clientRepo.CreateTransaction(ctx, &loyalty); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.saleRepo.GetWithDetails(ctx, sale.ID)
}

// resolvePrice picks the product's price row for the sale space and the
// product's own sale unit; without a sale space, any unit-matching row
// serves.
func resolvePrice(product *entity.Product, saleSpaceID *uuid.UUID) *entity.ProductPrice {
	for i := range product.Prices {
		price := &product.Prices[i]
		if price.SaleUnit != product.SaleUnit {
			continue
		}
		if saleSpaceID == nil || price.SaleSpaceID == *saleSpaceID {
			return price
		}
	}
	return nil
}

// GetSale retrieves a sale with its lines, client and kitchen order
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFound("Sale")
	}
	return sale, nil
}

// GetSaleByTicket retrieves a sale by ticket number
func (s *SaleService) GetSaleByTicket(ctx context.Context, ticketNo string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByTicketNo(ctx, ticketNo)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFound("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}
