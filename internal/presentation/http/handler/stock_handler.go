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

// StockHandler handles stock ledger HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// List handles listing current stock levels
func (h *StockHandler) List(c *gin.Context) {
	var filter request.StockFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	var productID *uuid.UUID
	if filter.ProductID != "" {
		id, err := uuid.Parse(filter.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product_id format")
			return
		}
		productID = &id
	}
	var loc *enum.Location
	if filter.Location != "" {
		l := enum.Location(filter.Location)
		loc = &l
	}

	params := &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage}
	result, err := h.stockService.ListStock(c.Request.Context(), productID, loc, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock retrieved successfully", result)
}

// GetProductStock handles retrieving per-location stock for one product
func (h *StockHandler) GetProductStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	items, err := h.stockService.GetProductStock(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product stock retrieved successfully", items)
}

// Receive handles a goods receipt outside a purchase
func (h *StockHandler) Receive(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.stockService.Receive(c.Request.Context(), &service.ReceiveInput{
		ProductID: req.ProductID,
		Location:  enum.Location(req.Location),
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		UserID:    userID,
		CostUSD:   req.CostUSD,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock received successfully", movement)
}

// Transfer handles moving stock between locations
func (h *StockHandler) Transfer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request.TransferStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.stockService.Transfer(c.Request.Context(), &service.TransferInput{
		ProductID: req.ProductID,
		From:      enum.Location(req.From),
		To:        enum.Location(req.To),
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		UserID:    userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock transferred successfully", movement)
}

// Loss handles recording a stock loss
func (h *StockHandler) Loss(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request.LossStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.stockService.Loss(c.Request.Context(), &service.LossInput{
		ProductID: req.ProductID,
		Location:  enum.Location(req.Location),
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		UserID:    userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Loss recorded successfully", movement)
}

// Adjust handles a signed manual correction
func (h *StockHandler) Adjust(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.stockService.Adjust(c.Request.Context(), &service.AdjustInput{
		ProductID: req.ProductID,
		Location:  enum.Location(req.Location),
		Delta:     req.Delta,
		Reason:    req.Reason,
		UserID:    userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock adjusted successfully", movement)
}

// ListMovements handles listing the movement log
func (h *StockHandler) ListMovements(c *gin.Context) {
	var filter request.MovementFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{Page: filter.Page, PerPage: filter.PerPage},
	}

	if filter.ProductID != "" {
		id, err := uuid.Parse(filter.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product_id format")
			return
		}
		params.ProductID = &id
	}
	if filter.Type != "" {
		t := enum.MovementType(filter.Type)
		params.Type = &t
	}
	if filter.Location != "" {
		l := enum.Location(filter.Location)
		params.Location = &l
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

	result, err := h.stockService.ListMovements(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Movements retrieved successfully", result)
}

// ReverseMovement handles undoing one movement's stock effect
func (h *StockHandler) ReverseMovement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.stockService.ReverseMovement(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Movement reversed successfully", nil)
}

// Reset handles zeroing all stock quantities
func (h *StockHandler) Reset(c *gin.Context) {
	if err := h.stockService.ResetAll(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock reset successfully", nil)
}

// Audit compares stored quantities against the replayed movement log
func (h *StockHandler) Audit(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	lines, err := h.stockService.Audit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock audit completed", lines)
}
