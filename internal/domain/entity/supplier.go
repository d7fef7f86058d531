package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Supplier represents a goods supplier.
type Supplier struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Purchases []Purchase `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}

// Purchase is a goods receipt from a supplier. Each line lands on the
// stock ledger as an IN movement at the purchase's location.
type Purchase struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ReferenceNo string        `gorm:"size:100;unique;not null" json:"reference_no"`
	SupplierID uuid.UUID      `gorm:"type:uuid;not null;index" json:"supplier_id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Location   enum.Location  `gorm:"size:20;not null" json:"location"`
	TotalUSD   int64          `gorm:"default:0" json:"-"` // cents
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Supplier Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items    []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

// MarshalJSON converts cent-denominated totals to decimals for API responses.
func (p Purchase) MarshalJSON() ([]byte, error) {
	type Alias Purchase
	return json.Marshal(&struct {
		Alias
		TotalUSD float64 `json:"total_usd"`
	}{
		Alias:    Alias(p),
		TotalUSD: float64(p.TotalUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem is one received line on a purchase.
type PurchaseItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"purchase_id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity    float64   `gorm:"not null" json:"quantity"`
	UnitCostUSD int64     `gorm:"not null" json:"-"` // cents
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON converts cent-denominated amounts to decimals for API responses.
func (i PurchaseItem) MarshalJSON() ([]byte, error) {
	type Alias PurchaseItem
	return json.Marshal(&struct {
		Alias
		UnitCostUSD float64 `json:"unit_cost_usd"`
	}{
		Alias:       Alias(i),
		UnitCostUSD: float64(i.UnitCostUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase item
func (i *PurchaseItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseItem model
func (PurchaseItem) TableName() string {
	return "purchase_items"
}
