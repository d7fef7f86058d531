package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExchangeRate is one version of the USD to CDF rate. Rates are never
// edited in place; a new row supersedes older ones, and the current
// rate is the latest row whose effective_from is not in the future.
type ExchangeRate struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Rate          float64   `gorm:"not null" json:"rate"` // CDF per USD
	EffectiveFrom time.Time `gorm:"not null;index" json:"effective_from"`
	CreatedByID   uuid.UUID `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new rate version
func (r *ExchangeRate) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExchangeRate model
func (ExchangeRate) TableName() string {
	return "exchange_rates"
}
