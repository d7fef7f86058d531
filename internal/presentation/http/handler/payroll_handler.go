package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mkadima/resto-api/internal/application/service"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/request"
	"github.com/mkadima/resto-api/internal/presentation/http/dto/response"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// PayrollHandler handles employee and salary HTTP requests
type PayrollHandler struct {
	payrollService *service.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// CreateEmployee handles registering an employee
func (h *PayrollHandler) CreateEmployee(c *gin.Context) {
	var req request.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.payrollService.CreateEmployee(c.Request.Context(), &service.EmployeeInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Position:      req.Position,
		Phone:         req.Phone,
		MonthlySalUSD: req.MonthlySalUSD,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Employee created successfully", employee)
}

// UpdateEmployee handles updating an employee
func (h *PayrollHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.payrollService.UpdateEmployee(c.Request.Context(), id, &service.EmployeeInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Position:      req.Position,
		Phone:         req.Phone,
		MonthlySalUSD: req.MonthlySalUSD,
	}, req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee updated successfully", employee)
}

// ListEmployees handles listing employees
func (h *PayrollHandler) ListEmployees(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	activeOnly := c.Query("active") == "true"

	result, err := h.payrollService.ListEmployees(c.Request.Context(), &params, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Employees retrieved successfully", result)
}

// DeleteEmployee handles deactivating an employee
func (h *PayrollHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.payrollService.DeleteEmployee(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Employee deleted successfully", nil)
}

// PaySalary handles recording one salary payment
func (h *PayrollHandler) PaySalary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req request.PaySalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.payrollService.PaySalary(c.Request.Context(), &service.PaySalaryInput{
		EmployeeID: req.EmployeeID,
		Period:     req.Period,
		AmountUSD:  req.AmountUSD,
		Note:       req.Note,
		PaidByID:   userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Salary payment recorded successfully", payment)
}

// ListPayments handles listing salary payments, optionally per period
func (h *PayrollHandler) ListPayments(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.payrollService.ListPayments(c.Request.Context(), c.Query("period"), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Salary payments retrieved successfully", result)
}
