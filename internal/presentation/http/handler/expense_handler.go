package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkadima/resto-api/internal/application/service"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/request"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/response"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func expenseInputFrom(c *gin.Context, req *request.ExpenseRequest) (*service.ExpenseInput, bool) {
	userID, ok := requireUser(c)
	if !ok {
		return nil, false
	}

	incurredAt := time.Now()
	if req.IncurredAt != "" {
		parsed, err := time.Parse("2006-01-02", req.IncurredAt)
		if err != nil {
			response.BadRequest(c, "incurred_at must be YYYY-MM-DD")
			return nil, false
		}
		incurredAt = parsed
	}

	return &service.ExpenseInput{
		Label:      req.Label,
		Category:   req.Category,
		AmountUSD:  req.AmountUSD,
		IncurredAt: incurredAt,
		UserID:     userID,
	}, true
}

// Create handles recording an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := expenseInputFrom(c, &req)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// Update handles updating an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, ok := expenseInputFrom(c, &req)
	if !ok {
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// List handles listing expenses with filters
func (h *ExpenseHandler) List(c *gin.Context) {
	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ExpenseFilterParams{
		Pagination: &pageParams,
		Category:   c.Query("category"),
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			response.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
		params.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			response.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
		end := to.AddDate(0, 0, 1).Add(-time.Second)
		params.To = &end
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Delete handles removing an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense deleted successfully", nil)
}
