package request

import "github.com/google/uuid"

// SupplierRequest represents a supplier create or update request
type SupplierRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}

// PurchaseLineRequest is one line of a goods receipt
type PurchaseLineRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	Quantity    float64   `json:"quantity" binding:"required,gt=0"`
	UnitCostUSD int64     `json:"unit_cost_usd" binding:"min=0"` // cents
}

// CreatePurchaseRequest represents a purchase creation request
type CreatePurchaseRequest struct {
	SupplierID uuid.UUID             `json:"supplier_id" binding:"required"`
	Location   string                `json:"location" binding:"required"`
	Items      []PurchaseLineRequest `json:"items" binding:"required,min=1,dive"`
}

// ExpenseRequest represents an expense create or update request
type ExpenseRequest struct {
	Label      string `json:"label" binding:"required,min=2,max=255"`
	Category   string `json:"category" binding:"required,min=2,max=100"`
	AmountUSD  int64  `json:"amount_usd" binding:"required,gt=0"` // cents
	IncurredAt string `json:"incurred_at"`                        // YYYY-MM-DD, defaults to today
}
