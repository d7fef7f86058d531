package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkadima/resto-api/internal/application/service"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/request"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/response"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// InventoryHandler handles inventory counting HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Open handles opening a counting session with a stock snapshot
func (h *InventoryHandler) Open(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	session, err := h.inventoryService.OpenSession(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory session opened", session)
}

// RecordCounts handles storing counted quantities on an open session
func (h *InventoryHandler) RecordCounts(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.RecordCountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	counts := make([]service.CountInput, 0, len(req.Counts))
	for _, line := range req.Counts {
		counts = append(counts, service.CountInput{
			ProductID: line.ProductID,
			Location:  enum.Location(line.Location),
			Actual:    line.Actual,
		})
	}

	session, err := h.inventoryService.RecordCounts(c.Request.Context(), id, counts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Counts recorded successfully", session)
}

// Close handles closing a session and applying variances to stock
func (h *InventoryHandler) Close(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	session, err := h.inventoryService.CloseSession(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory session closed", session)
}

// Get handles retrieving a session with its lines
func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	session, err := h.inventoryService.GetSession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory session retrieved successfully", session)
}

// List handles listing sessions
func (h *InventoryHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.inventoryService.ListSessions(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventory sessions retrieved successfully", result)
}
