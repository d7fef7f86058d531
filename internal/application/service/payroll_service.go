package service

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PayrollService handles employees and salary payments
type PayrollService struct {
	payrollRepo repository.PayrollRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(payrollRepo repository.PayrollRepository) *PayrollService {
	return &PayrollService{payrollRepo: payrollRepo}
}

// EmployeeInput represents the create/update employee input
type EmployeeInput struct {
	FirstName     string
	LastName      string
	Position      string
	Phone         *string
	MonthlySalUSD int64 // cents
}

// CreateEmployee creates a new employee
func (s *PayrollService) CreateEmployee(ctx context.Context, input *EmployeeInput) (*entity.Employee, error) {
	if input.MonthlySalUSD < 0 {
		return nil, apperror.NewBadRequest("Salary cannot be negative")
	}

	employee := &entity.Employee{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Position:      input.Position,
		Phone:         input.Phone,
		MonthlySalUSD: input.MonthlySalUSD,
		Active:        true,
	}
	if err := s.payrollRepo.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// UpdateEmployee updates an employee
func (s *PayrollService) UpdateEmployee(ctx context.Context, id uuid.UUID, input *EmployeeInput, active *bool) (*entity.Employee, error) {
	employee, err := s.payrollRepo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFound("Employee")
	}

	if input.FirstName != "" {
		employee.FirstName = input.FirstName
	}
	if input.LastName != "" {
		employee.LastName = input.LastName
	}
	if input.Position != "" {
		employee.Position = input.Position
	}
	if input.Phone != nil {
		employee.Phone = input.Phone
	}
	if input.MonthlySalUSD > 0 {
		employee.MonthlySalUSD = input.MonthlySalUSD
	}
	if active != nil {
		employee.Active = *active
	}
	if err := s.payrollRepo.UpdateEmployee(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee soft-deletes an employee
func (s *PayrollService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	employee, err := s.payrollRepo.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFound("Employee")
	}
	return s.payrollRepo.DeleteEmployee(ctx, id)
}

// ListEmployees lists employees
func (s *PayrollService) ListEmployees(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) (*pagination.PaginatedResult[entity.Employee], error) {
	employees, total, err := s.payrollRepo.ListEmployees(ctx, params, activeOnly)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}

// PaySalaryInput represents a salary payment for one period
type PaySalaryInput struct {
	EmployeeID uuid.UUID
	Period     string // YYYY-MM
	AmountUSD  int64  // cents; 0 means the employee's monthly salary
	Note       string
	PaidByID   uuid.UUID
}

// PaySalary records one salary payment. An employee is paid at most
// once per period.
func (s *PayrollService) PaySalary(ctx context.Context, input *PaySalaryInput) (*entity.SalaryPayment, error) {
	if !periodPattern.MatchString(input.Period) {
		return nil, apperror.NewBadRequest("Period must be YYYY-MM")
	}

	employee, err := s.payrollRepo.GetEmployee(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFound("Employee")
	}

	existing, err := s.payrollRepo.GetPayment(ctx, input.EmployeeID, input.Period)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("Salary already paid for this period")
	}

	amount := input.AmountUSD
	if amount <= 0 {
		amount = employee.MonthlySalUSD
	}

	payment := &entity.SalaryPayment{
		EmployeeID: input.EmployeeID,
		Period:     input.Period,
		AmountUSD:  amount,
		PaidByID:   input.PaidByID,
		PaidAt:     time.Now(),
		Note:       input.Note,
	}
	if err := s.payrollRepo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListPayments lists salary payments, optionally for one period
func (s *PayrollService) ListPayments(ctx context.Context, period string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.SalaryPayment], error) {
	if period != "" && !periodPattern.MatchString(period) {
		return nil, apperror.NewBadRequest("Period must be YYYY-MM")
	}
	payments, total, err := s.payrollRepo.ListPayments(ctx, period, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}
