package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"gorm.io/gorm"
)

// InventorySession is one count-and-reconcile cycle. At most one
// session is OPEN at a time.
type InventorySession struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Status        enum.InventoryStatus `gorm:"size:20;not null;index" json:"status"`
	OpenedByID    uuid.UUID            `gorm:"type:uuid;not null" json:"opened_by_id"`
	ClosedByID    *uuid.UUID           `gorm:"type:uuid" json:"closed_by_id,omitempty"`
	OpenedAt      time.Time            `json:"opened_at"`
	ClosedAt      *time.Time           `json:"closed_at,omitempty"`
	TotalVariance float64              `gorm:"default:0" json:"total_variance"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`

	Items []InventoryItem `gorm:"foreignKey:SessionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new session
func (s *InventorySession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventorySession model
func (InventorySession) TableName() string {
	return "inventory_sessions"
}

// InventoryItem is one (product, location) line in a count session.
// Expected is snapshotted at open; actual is filled by the counters.
type InventoryItem struct {
	ID               uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	SessionID        uuid.UUID     `gorm:"type:uuid;not null;index:idx_inventory_session_line,unique" json:"session_id"`
	ProductID        uuid.UUID     `gorm:"type:uuid;not null;index:idx_inventory_session_line,unique" json:"product_id"`
	Location         enum.Location `gorm:"size:20;not null;index:idx_inventory_session_line,unique" json:"location"`
	ExpectedQuantity float64       `gorm:"not null" json:"expected_quantity"`
	ActualQuantity   float64       `gorm:"not null;default:0" json:"actual_quantity"`
	Variance         float64       `gorm:"not null;default:0" json:"variance"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}
