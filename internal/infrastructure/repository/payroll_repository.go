package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	domainRepo "github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/pagination"
	"gorm.io/gorm"
)

type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository
func NewPayrollRepository(db *gorm.DB) domainRepo.PayrollRepository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) CreateEmployee(ctx context.Context, employee *entity.Employee) error {
	return dbFrom(ctx, r.db).Create(employee).Error
}

func (r *payrollRepository) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	err := dbFrom(ctx, r.db).First(&employee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &employee, err
}

func (r *payrollRepository) UpdateEmployee(ctx context.Context, employee *entity.Employee) error {
	return dbFrom(ctx, r.db).Save(employee).Error
}

func (r *payrollRepository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Employee{}, "id = ?", id).Error
}

func (r *payrollRepository) ListEmployees(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) ([]entity.Employee, int64, error) {
	var employees []entity.Employee
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Employee{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error

	return employees, total, err
}

func (r *payrollRepository) CreatePayment(ctx context.Context, payment *entity.SalaryPayment) error {
	return dbFrom(ctx, r.db).Create(payment).Error
}

func (r *payrollRepository) GetPayment(ctx context.Context, employeeID uuid.UUID, period string) (*entity.SalaryPayment, error) {
	var payment entity.SalaryPayment
	err := dbFrom(ctx, r.db).
		First(&payment, "employee_id = ? AND period = ?", employeeID, period).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *payrollRepository) ListPayments(ctx context.Context, period string, params *pagination.PaginationParams) ([]entity.SalaryPayment, int64, error) {
	var payments []entity.SalaryPayment
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.SalaryPayment{})
	if period != "" {
		query = query.Where("period = ?", period)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Employee").
		Order("created_at DESC").
		Find(&payments).Error

	return payments, total, err
}
