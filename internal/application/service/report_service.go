package service

import (
	"context"
	"time"

	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
)

// ReportService serves management reports as ad hoc aggregations.
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// Period is a validated [from, to] reporting window
type Period struct {
	From time.Time
	To   time.Time
}

// ResolvePeriod parses the from/to query values, defaulting to the last
// 30 days.
func ResolvePeriod(fromStr, toStr string) (*Period, error) {
	now := time.Now()
	period := &Period{From: now.AddDate(0, 0, -30), To: now}

	if fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, apperror.NewBadRequest("from must be YYYY-MM-DD")
		}
		period.From = from
	}
	if toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, apperror.NewBadRequest("to must be YYYY-MM-DD")
		}
		// Include the whole end day
		period.To = to.AddDate(0, 0, 1).Add(-time.Second)
	}
	if period.To.Before(period.From) {
		return nil, apperror.NewBadRequest("to cannot precede from")
	}
	return period, nil
}

// SalesSummary is the sales report payload
type SalesSummary struct {
	Daily     []repository.DailySales       `json:"daily"`
	ByPayment []repository.PaymentBreakdown `json:"by_payment"`
}

// SalesSummary aggregates completed sales by day and payment method.
func (s *ReportService) SalesSummary(ctx context.Context, period *Period) (*SalesSummary, error) {
	daily, err := s.reportRepo.DailySales(ctx, period.From, period.To)
	if err != nil {
		return nil, err
	}
	byPayment, err := s.reportRepo.SalesByPayment(ctx, period.From, period.To)
	if err != nil {
		return nil, err
	}
	return &SalesSummary{Daily: daily, ByPayment: byPayment}, nil
}

// TopProducts returns the best sellers for a period.
func (s *ReportService) TopProducts(ctx context.Context, period *Period, limit int) ([]repository.TopProduct, error) {
	return s.reportRepo.TopProducts(ctx, period.From, period.To, limit)
}

// StockValuation values current stock at the latest known costs.
func (s *ReportService) StockValuation(ctx context.Context) ([]repository.StockValuationLine, error) {
	return s.reportRepo.StockValuation(ctx)
}

// ExpenseTotals aggregates expenses per category for a period.
func (s *ReportService) ExpenseTotals(ctx context.Context, period *Period) ([]repository.ExpenseTotal, error) {
	return s.reportRepo.ExpenseTotals(ctx, period.From, period.To)
}

// KitchenThroughput reports kitchen order counts and average
// preparation time for a period.
func (s *ReportService) KitchenThroughput(ctx context.Context, period *Period) (*repository.KitchenThroughput, error) {
	return s.reportRepo.KitchenThroughput(ctx, period.From, period.To)
}
