package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/application/service"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/request"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/response"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// SaleHandler handles sale HTTP requests
type SaleHandler struct {
	saleService    *service.SaleService
	printerService *service.PrinterService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService, printerService *service.PrinterService) *SaleHandler {
	return &SaleHandler{saleService: saleService, printerService: printerService}
}

// Settle handles settling a sale: stock check, pricing, loyalty and
// kitchen routing happen atomically in the service.
func (h *SaleHandler) Settle(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request.SettleSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.SettleSaleInput{
		UserID:        userID,
		ClientID:      req.ClientID,
		SaleSpaceID:   req.SaleSpaceID,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		OrderType:     enum.OrderType(req.OrderType),
	}
	if req.Delivery != nil {
		input.Delivery = &service.DeliveryInput{
			Address: req.Delivery.Address,
			Phone:   req.Delivery.Phone,
			FeeUSD:  req.Delivery.FeeUSD,
		}
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, service.SaleLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	sale, err := h.saleService.SettleSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale settled successfully", sale)
}

// Get handles retrieving a sale with its details
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// GetByTicket handles retrieving a sale by its ticket number
func (h *SaleHandler) GetByTicket(c *gin.Context) {
	sale, err := h.saleService.GetSaleByTicket(c.Request.Context(), c.Param("ticketNo"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// List handles listing sales with filters
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
	}

	if filter.Status != "" {
		s := enum.SaleStatus(filter.Status)
		params.Status = &s
	}
	if filter.PaymentMethod != "" {
		pm := enum.PaymentMethod(filter.PaymentMethod)
		params.PaymentMethod = &pm
	}
	if filter.ClientID != "" {
		id, err := uuid.Parse(filter.ClientID)
		if err != nil {
			response.BadRequest(c, "Invalid client_id format")
			return
		}
		params.ClientID = &id
	}
	if filter.From != "" {
		from, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			response.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
		params.From = &from
	}
	if filter.To != "" {
		to, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			response.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
		end := to.AddDate(0, 0, 1).Add(-time.Second)
		params.To = &end
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// PrintReceipt handles reprinting the customer receipt
func (h *SaleHandler) PrintReceipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.printerService.PrintReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}
