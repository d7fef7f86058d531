package repository

import (
	"context"
	"time"

	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/enum"
	domainRepo "github.com/mkadima/resto-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) DailySales(ctx context.Context, from, to time.Time) ([]domainRepo.DailySales, error) {
	var rows []domainRepo.DailySales
	err := dbFrom(ctx, r.db).Model(&entity.Sale{}).
		Select(`DATE_TRUNC('day', created_at) AS day,
			COUNT(*) AS sale_count,
			COALESCE(SUM(total_net_usd), 0) AS total_net_usd,
			COALESCE(SUM(total_cdf), 0) AS total_cdf,
			COALESCE(SUM(cost_usd), 0) AS cost_usd,
			COALESCE(SUM(points_earned), 0) AS points_earned`).
		Where("status = ? AND created_at >= ? AND created_at <= ?", enum.SaleStatusCompleted, from, to).
		Group("DATE_TRUNC('day', created_at)").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) SalesByPayment(ctx context.Context, from, to time.Time) ([]domainRepo.PaymentBreakdown, error) {
	var rows []domainRepo.PaymentBreakdown
	err := dbFrom(ctx, r.db).Model(&entity.Sale{}).
		Select(`payment_method,
			COUNT(*) AS sale_count,
			COALESCE(SUM(total_net_usd), 0) AS total_net_usd`).
		Where("status = ? AND created_at >= ? AND created_at <= ?", enum.SaleStatusCompleted, from, to).
		Group("payment_method").
		Order("total_net_usd DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]domainRepo.TopProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []domainRepo.TopProduct
	err := dbFrom(ctx, r.db).Model(&entity.SaleItem{}).
		Select(`sale_items.product_id,
			products.name AS product_name,
			COALESCE(SUM(sale_items.quantity), 0) AS quantity,
			COALESCE(SUM(sale_items.total_usd), 0) AS total_usd`).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Joins("JOIN products ON products.id = sale_items.product_id").
		Where("sales.status = ? AND sales.created_at >= ? AND sales.created_at <= ?", enum.SaleStatusCompleted, from, to).
		Group("sale_items.product_id, products.name").
		Order("total_usd DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// StockValuation values each positive stock row at the smallest-unit cost
// recorded for the product (0 when no cost is known).
func (r *reportRepository) StockValuation(ctx context.Context) ([]domainRepo.StockValuationLine, error) {
	var rows []domainRepo.StockValuationLine
	err := dbFrom(ctx, r.db).Model(&entity.StockItem{}).
		Select(`stock_items.product_id,
			products.name AS product_name,
			stock_items.location,
			stock_items.quantity,
			CAST(stock_items.quantity * COALESCE((
				SELECT MIN(pc.amount_usd) FROM product_costs pc
				WHERE pc.product_id = stock_items.product_id AND pc.deleted_at IS NULL
			), 0) AS BIGINT) AS value_usd`).
		Joins("JOIN products ON products.id = stock_items.product_id AND products.deleted_at IS NULL").
		Where("stock_items.quantity > 0").
		Order("products.name ASC, stock_items.location ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) KitchenThroughput(ctx context.Context, from, to time.Time) (*domainRepo.KitchenThroughput, error) {
	var row domainRepo.KitchenThroughput
	err := dbFrom(ctx, r.db).Model(&entity.KitchenOrder{}).
		Select(`COUNT(*) AS order_count,
			COUNT(completed_at) AS delivered_count,
			COALESCE(AVG(EXTRACT(EPOCH FROM (completed_at - started_at))), 0) AS avg_prep_seconds`).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *reportRepository) ExpenseTotals(ctx context.Context, from, to time.Time) ([]domainRepo.ExpenseTotal, error) {
	var rows []domainRepo.ExpenseTotal
	err := dbFrom(ctx, r.db).Model(&entity.Expense{}).
		Select(`category, COALESCE(SUM(amount_usd), 0) AS total_usd`).
		Where("incurred_at >= ? AND incurred_at <= ?", from, to).
		Group("category").
		Order("total_usd DESC").
		Scan(&rows).Error
	return rows, err
}
