package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkadima/resto-api/internal/application/service"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/request"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/response"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// RateHandler handles exchange rate HTTP requests
type RateHandler struct {
	rateService *service.RateService
}

// NewRateHandler creates a new rate handler
func NewRateHandler(rateService *service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// Set handles recording a new exchange rate version
func (h *RateHandler) Set(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request.SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	effectiveFrom := time.Now()
	if req.EffectiveFrom != "" {
		parsed, err := time.Parse(time.RFC3339, req.EffectiveFrom)
		if err != nil {
			response.BadRequest(c, "effective_from must be RFC3339")
			return
		}
		effectiveFrom = parsed
	}

	rate, err := h.rateService.SetRate(c.Request.Context(), req.Rate, effectiveFrom, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Exchange rate set successfully", rate)
}

// Current handles retrieving the rate in force right now
func (h *RateHandler) Current(c *gin.Context) {
	rate, err := h.rateService.CurrentRate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Current exchange rate retrieved successfully", rate)
}

// List handles listing rate history
func (h *RateHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.rateService.ListRates(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Exchange rates retrieved successfully", result)
}
