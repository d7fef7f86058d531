package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkadima/resto-api/internal/application/service"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/request"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/response"
)

// KitchenHandler handles kitchen order HTTP requests
type KitchenHandler struct {
	kitchenService *service.KitchenService
	printerService *service.PrinterService
}

// NewKitchenHandler creates a new kitchen handler
func NewKitchenHandler(kitchenService *service.KitchenService, printerService *service.PrinterService) *KitchenHandler {
	return &KitchenHandler{kitchenService: kitchenService, printerService: printerService}
}

// ListActive handles listing orders still in flight
func (h *KitchenHandler) ListActive(c *gin.Context) {
	orders, err := h.kitchenService.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active kitchen orders retrieved successfully", orders)
}

// Get handles retrieving one kitchen order
func (h *KitchenHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.kitchenService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Kitchen order retrieved successfully", order)
}

// UpdateStatus handles moving an order through the kitchen workflow
func (h *KitchenHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request.UpdateKitchenStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.kitchenService.UpdateStatus(c.Request.Context(), id, userID, enum.KitchenStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Kitchen order updated successfully", order)
}

// PrintTicket handles reprinting the kitchen ticket
func (h *KitchenHandler) PrintTicket(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.printerService.PrintKitchenTicket(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Kitchen ticket sent to printer", nil)
}
