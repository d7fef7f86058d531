package request

import "github.com/google/uuid"

// EmployeeRequest represents an employee create or update request
type EmployeeRequest struct {
	FirstName     string  `json:"first_name" binding:"required,min=2,max=100"`
	LastName      string  `json:"last_name" binding:"required,min=2,max=100"`
	Position      string  `json:"position" binding:"required,min=2,max=100"`
	Phone         *string `json:"phone" binding:"omitempty,max=30"`
	MonthlySalUSD int64   `json:"monthly_salary_usd" binding:"min=0"` // cents
	Active        *bool   `json:"active"`
}

// PaySalaryRequest represents a salary payment request
type PaySalaryRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	Period     string    `json:"period" binding:"required"` // YYYY-MM
	AmountUSD  int64     `json:"amount_usd" binding:"min=0"`
	Note       string    `json:"note" binding:"omitempty,max=255"`
}
