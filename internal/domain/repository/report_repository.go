package repository

import (
	"context"
	"time"

	"github.com/mkadima/resto-api/internal/domain/enum"
)

// DailySales is one day's aggregated sales figures.
type DailySales struct {
	Day          time.Time `json:"day"`
	SaleCount    int64     `json:"sale_count"`
	TotalNetUSD  int64     `json:"total_net_usd"`  // cents
	TotalCDF     int64     `json:"total_cdf"`
	CostUSD      int64     `json:"cost_usd"` // cents
	PointsEarned int64     `json:"points_earned"`
}

// PaymentBreakdown aggregates sales per payment method.
type PaymentBreakdown struct {
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	SaleCount     int64              `json:"sale_count"`
	TotalNetUSD   int64              `json:"total_net_usd"` // cents
}

// TopProduct is one line of the top products report.
type TopProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	TotalUSD    int64   `json:"total_usd"` // cents
}

// StockValuationLine values current stock at the latest known cost.
type StockValuationLine struct {
	ProductID   string        `json:"product_id"`
	ProductName string        `json:"product_name"`
	Location    enum.Location `json:"location"`
	Quantity    float64       `json:"quantity"`
	ValueUSD    int64         `json:"value_usd"` // cents
}

// ExpenseTotal aggregates expenses per category.
type ExpenseTotal struct {
	Category string `json:"category"`
	TotalUSD int64  `json:"total_usd"` // cents
}

// KitchenThroughput aggregates kitchen order timing for a period.
type KitchenThroughput struct {
	OrderCount     int64   `json:"order_count"`
	DeliveredCount int64   `json:"delivered_count"`
	AvgPrepSeconds float64 `json:"avg_prep_seconds"`
}

// ReportRepository runs ad hoc aggregation queries. Nothing is
// materialized.
type ReportRepository interface {
	DailySales(ctx context.Context, from, to time.Time) ([]DailySales, error)
	SalesByPayment(ctx context.Context, from, to time.Time) ([]PaymentBreakdown, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProduct, error)
	StockValuation(ctx context.Context) ([]StockValuationLine, error)
	ExpenseTotals(ctx context.Context, from, to time.Time) ([]ExpenseTotal, error)
	KitchenThroughput(ctx context.Context, from, to time.Time) (*KitchenThroughput, error)
}
