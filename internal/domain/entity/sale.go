package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Sale represents a settled (or draft) ticket. USD totals are stored in
// cents, CDF totals in whole francs.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TicketNo      string             `gorm:"size:100;unique;not null" json:"ticket_no"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID      *uuid.UUID         `gorm:"type:uuid;index" json:"client_id,omitempty"`
	SaleSpaceID   *uuid.UUID         `gorm:"type:uuid;index" json:"sale_space_id,omitempty"`
	Status        enum.SaleStatus    `gorm:"size:20;not null;index" json:"status"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	OrderType     enum.OrderType     `gorm:"size:20;not null" json:"order_type"`
	TotalBrutUSD  int64              `gorm:"default:0" json:"-"` // cents
	TotalNetUSD   int64              `gorm:"default:0" json:"-"` // cents
	TotalCDF      int64              `gorm:"default:0" json:"total_cdf"`
	CostUSD       int64              `gorm:"default:0" json:"-"` // cents, COGS snapshot
	PointsEarned  int64              `gorm:"default:0" json:"points_earned"`
	PointsUsed    int64              `gorm:"default:0" json:"points_used"`
	ExchangeRate  float64            `gorm:"default:0" json:"exchange_rate"` // CDF per USD at sale time
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Client       *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	SaleSpace    *SaleSpace    `gorm:"foreignKey:SaleSpaceID" json:"sale_space,omitempty"`
	Items        []SaleItem    `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	KitchenOrder *KitchenOrder `gorm:"foreignKey:SaleID" json:"kitchen_order,omitempty"`
	DeliveryInfo *DeliveryInfo `gorm:"foreignKey:SaleID" json:"delivery_info,omitempty"`
}

// MarshalJSON converts cent-denominated USD totals to decimals for API responses.
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		TotalBrutUSD float64 `json:"total_brut_usd"`
		TotalNetUSD  float64 `json:"total_net_usd"`
		CostUSD      float64 `json:"cost_usd"`
	}{
		Alias:        Alias(s),
		TotalBrutUSD: float64(s.TotalBrutUSD) / 100,
		TotalNetUSD:  float64(s.TotalNetUSD) / 100,
		CostUSD:      float64(s.CostUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is a line on a sale with price and cost snapshots taken at
// sale time.
type SaleItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity     float64        `gorm:"not null" json:"quantity"`
	UnitPriceUSD int64          `gorm:"not null" json:"-"` // cents
	UnitCostUSD  int64          `gorm:"default:0" json:"-"` // cents
	TotalUSD     int64          `gorm:"not null" json:"-"` // cents
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON converts cent-denominated amounts to decimals for API responses.
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPriceUSD float64 `json:"unit_price_usd"`
		UnitCostUSD  float64 `json:"unit_cost_usd"`
		TotalUSD     float64 `json:"total_usd"`
	}{
		Alias:        Alias(i),
		UnitPriceUSD: float64(i.UnitPriceUSD) / 100,
		UnitCostUSD:  float64(i.UnitCostUSD) / 100,
		TotalUSD:     float64(i.TotalUSD) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// KitchenOrder drives the kitchen display for one sale.
type KitchenOrder struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID          `gorm:"type:uuid;unique;not null" json:"sale_id"`
	Status      enum.KitchenStatus `gorm:"size:20;not null;index" json:"status"`
	PreparerID  *uuid.UUID         `gorm:"type:uuid" json:"preparer_id,omitempty"`
	StartedAt   *time.Time         `json:"started_at,omitempty"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	Sale *Sale `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new kitchen order
func (k *KitchenOrder) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the KitchenOrder model
func (KitchenOrder) TableName() string {
	return "kitchen_orders"
}

// DeliveryInfo holds delivery details for a delivery-type sale.
type DeliveryInfo struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID `gorm:"type:uuid;unique;not null" json:"sale_id"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	FeeUSD    int64     `gorm:"default:0" json:"fee_usd"` // cents
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating new delivery info
func (d *DeliveryInfo) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DeliveryInfo model
func (DeliveryInfo) TableName() string {
	return "delivery_infos"
}
