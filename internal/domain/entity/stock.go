package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockItem holds the current quantity of a product at one location.
// There is exactly one row per (product, location). Quantities are only
// mutated through movement-producing operations, except the inventory
// reconciliation overwrite and the explicit reset-all wipe.
type StockItem struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;index:idx_stock_product_location,unique" json:"product_id"`
	Location  enum.Location `gorm:"size:20;not null;index:idx_stock_product_location,unique" json:"location"`
	Quantity  float64       `gorm:"not null;default:0" json:"quantity"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new stock item
func (s *StockItem) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockItem model
func (StockItem) TableName() string {
	return "stock_items"
}

// StockMovement is an immutable ledger entry describing one stock
// quantity change. Invariant: the signed sum of movements touching a
// (product, location) equals the StockItem quantity there.
type StockMovement struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	ProductID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"product_id"`
	Type         enum.MovementType `gorm:"size:20;not null;index" json:"type"`
	Quantity     float64           `gorm:"not null" json:"quantity"`
	FromLocation *enum.Location    `gorm:"size:20" json:"from_location,omitempty"`
	ToLocation   *enum.Location    `gorm:"size:20" json:"to_location,omitempty"`
	Reason       string            `gorm:"size:255" json:"reason"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	CostUSD      int64             `gorm:"default:0" json:"cost_usd"`
	CreatedAt    time.Time         `gorm:"index" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}

// SignedQuantityAt returns the signed effect of this movement on the
// given location: positive when the movement put stock there, negative
// when it took stock away, zero when the location is not touched.
func (m *StockMovement) SignedQuantityAt(loc enum.Location) float64 {
	var delta float64
	if m.ToLocation != nil && *m.ToLocation == loc {
		delta += m.Quantity
	}
	if m.FromLocation != nil && *m.FromLocation == loc {
		delta -= m.Quantity
	}
	return delta
}
