package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name       string     `json:"name" binding:"required,min=2,max=255"`
	Code       string     `json:"code" binding:"omitempty,max=50"`
	Type       string     `json:"type" binding:"required"`
	SaleUnit   string     `json:"sale_unit" binding:"required"`
	CategoryID *uuid.UUID `json:"category_id"`
	Vendable   *bool      `json:"vendable"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name       *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Type       *string    `json:"type"`
	SaleUnit   *string    `json:"sale_unit"`
	CategoryID *uuid.UUID `json:"category_id"`
	Active     *bool      `json:"active"`
	Vendable   *bool      `json:"vendable"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	Type       string `form:"type"`
	Vendable   *bool  `form:"vendable"`
	Active     *bool  `form:"active"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// SetPriceRequest creates or replaces a price for a (space, unit) pair
type SetPriceRequest struct {
	SaleSpaceID uuid.UUID `json:"sale_space_id" binding:"required"`
	SaleUnit    string    `json:"sale_unit" binding:"required"`
	AmountUSD   int64     `json:"amount_usd" binding:"min=0"` // cents
	AmountCDF   int64     `json:"amount_cdf" binding:"min=0"` // whole francs
}

// SetCostRequest creates or replaces a cost for a sale unit
type SetCostRequest struct {
	SaleUnit  string `json:"sale_unit" binding:"required"`
	AmountUSD int64  `json:"amount_usd" binding:"min=0"` // cents
	AmountCDF int64  `json:"amount_cdf" binding:"min=0"` // whole francs
}
