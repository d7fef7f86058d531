package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// ExpenseService handles operating expenses
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseInput represents the create/update expense input
type ExpenseInput struct {
	Label      string
	Category   string
	AmountUSD  int64 // cents
	IncurredAt time.Time
	UserID     uuid.UUID
}

// CreateExpense creates a new expense entry
func (s *ExpenseService) CreateExpense(ctx context.Context, input *ExpenseInput) (*entity.Expense, error) {
	if input.AmountUSD <= 0 {
		return nil, apperror.NewBadRequest("Amount must be positive")
	}
	incurredAt := input.IncurredAt
	if incurredAt.IsZero() {
		incurredAt = time.Now()
	}

	expense := &entity.Expense{
		Label:      input.Label,
		Category:   input.Category,
		AmountUSD:  input.AmountUSD,
		IncurredAt: incurredAt,
		UserID:     input.UserID,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense updates an expense entry
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFound("Expense")
	}

	if input.Label != "" {
		expense.Label = input.Label
	}
	if input.Category != "" {
		expense.Category = input.Category
	}
	if input.AmountUSD > 0 {
		expense.AmountUSD = input.AmountUSD
	}
	if !input.IncurredAt.IsZero() {
		expense.IncurredAt = input.IncurredAt
	}
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense soft-deletes an expense entry
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFound("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ListExpenses lists expenses with filtering
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}
