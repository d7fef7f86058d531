package request

import "github.com/google/uuid"

// ReceiveStockRequest represents a goods receipt outside a purchase
type ReceiveStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
	Reason    string    `json:"reason" binding:"omitempty,max=255"`
	CostUSD   int64     `json:"cost_usd" binding:"min=0"` // cents
}

// TransferStockRequest represents an inter-location transfer
type TransferStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	From      string    `json:"from" binding:"required"`
	To        string    `json:"to" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
	Reason    string    `json:"reason" binding:"omitempty,max=255"`
}

// LossStockRequest represents a recorded loss (breakage, spoilage)
type LossStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
	Reason    string    `json:"reason" binding:"required,max=255"`
}

// AdjustStockRequest represents a signed manual correction
type AdjustStockRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	Delta     float64   `json:"delta" binding:"required"`
	Reason    string    `json:"reason" binding:"required,max=255"`
}

// MovementFilterRequest represents movement log filter parameters
type MovementFilterRequest struct {
	ProductID string `form:"product_id"`
	Type      string `form:"type"`
	Location  string `form:"location"`
	From      string `form:"from"`
	To        string `form:"to"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// StockFilterRequest represents stock listing filter parameters
type StockFilterRequest struct {
	ProductID string `form:"product_id"`
	Location  string `form:"location"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
