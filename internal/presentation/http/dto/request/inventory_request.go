package request

import "github.com/google/uuid"

// CountLineRequest is one counted line of an inventory session
type CountLineRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	Actual    float64   `json:"actual" binding:"min=0"`
}

// RecordCountsRequest represents a batch of counted lines
type RecordCountsRequest struct {
	Counts []CountLineRequest `json:"counts" binding:"required,min=1,dive"`
}
