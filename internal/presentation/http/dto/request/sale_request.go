package request

import "github.com/google/uuid"

// SaleLineRequest is one line of a sale
type SaleLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  float64   `json:"quantity" binding:"required,gt=0"`
}

// DeliveryRequest holds delivery details for a DELIVERY sale
type DeliveryRequest struct {
	Address string `json:"address" binding:"required,max=255"`
	Phone   string `json:"phone" binding:"required,max=30"`
	FeeUSD  int64  `json:"fee_usd" binding:"min=0"` // cents
}

// SettleSaleRequest represents a sale settlement request
type SettleSaleRequest struct {
	ClientID      *uuid.UUID        `json:"client_id"`
	SaleSpaceID   *uuid.UUID        `json:"sale_space_id"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	OrderType     string            `json:"order_type" binding:"required"`
	Delivery      *DeliveryRequest  `json:"delivery"`
	Items         []SaleLineRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleFilterRequest represents sale listing filter parameters
type SaleFilterRequest struct {
	Status        string `form:"status"`
	PaymentMethod string `form:"payment_method"`
	ClientID      string `form:"client_id"`
	From          string `form:"from"`
	To            string `form:"to"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}

// UpdateKitchenStatusRequest represents a kitchen order status change
type UpdateKitchenStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
