package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is an operating expense entry.
type Expense struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Label      string         `gorm:"size:255;not null" json:"label"`
	Category   string         `gorm:"size:100;index" json:"category"`
	AmountUSD  int64          `gorm:"not null" json:"-"` // cents
	IncurredAt time.Time      `gorm:"not null;index" json:"incurred_at"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON converts cent-denominated amounts to decimals for API responses.
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		AmountUSD float64 `json:"amount_usd"`
	}{
		Alias:     Alias(e),
		AmountUSD: float64(e.AmountUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
