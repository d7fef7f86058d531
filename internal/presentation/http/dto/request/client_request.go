package request

// ClientRequest represents a client create or update request
type ClientRequest struct {
	Name  string  `json:"name" binding:"required,min=2,max=255"`
	Phone *string `json:"phone" binding:"omitempty,max=30"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// SetRateRequest represents an exchange rate change request
type SetRateRequest struct {
	Rate          float64 `json:"rate" binding:"required,gt=0"` // CDF per USD
	EffectiveFrom string  `json:"effective_from"`               // RFC3339, defaults to now
}
