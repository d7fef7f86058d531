package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// PayrollRepository defines the interface for employees and salary payments
type PayrollRepository interface {
	CreateEmployee(ctx context.Context, employee *entity.Employee) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, employee *entity.Employee) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
	ListEmployees(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) ([]entity.Employee, int64, error)

	CreatePayment(ctx context.Context, payment *entity.SalaryPayment) error
	// GetPayment returns the payment for (employee, period), or nil.
	GetPayment(ctx context.Context, employeeID uuid.UUID, period string) (*entity.SalaryPayment, error)
	ListPayments(ctx context.Context, period string, params *pagination.PaginationParams) ([]entity.SalaryPayment, int64, error)
}
