package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product represents an item in the catalog. Prices and costs are held
// on separate rows so a product can be priced per sale space and per
// sale unit, in both currencies.
type Product struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID *uuid.UUID       `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name       string           `gorm:"size:255;not null" json:"name"`
	Slug       string           `gorm:"size:255;unique;not null" json:"slug"`
	Code       string           `gorm:"size:100;unique;not null" json:"code"`
	Type       enum.ProductType `gorm:"size:20;not null;index" json:"type"`
	SaleUnit   enum.SaleUnit    `gorm:"size:20;not null" json:"sale_unit"`
	// No column defaults here: GORM omits zero-valued fields that carry a
	// default tag, which would silently turn a computed false into true
	// on insert. The service sets both flags explicitly on create.
	Active     bool             `json:"active"`
	Vendable   bool             `json:"vendable"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Category *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Prices   []ProductPrice `gorm:"foreignKey:ProductID" json:"prices,omitempty"`
	Costs    []ProductCost  `gorm:"foreignKey:ProductID" json:"costs,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// CostFor returns the cost row matching the given sale unit, or nil.
func (p *Product) CostFor(unit enum.SaleUnit) *ProductCost {
	for i := range p.Costs {
		if p.Costs[i].SaleUnit == unit {
			return &p.Costs[i]
		}
	}
	return nil
}

// ProductPrice is a price for a product in one sale space and sale unit.
// USD amounts are stored in cents, CDF amounts in whole francs.
type ProductPrice struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_price_product_space_unit,unique" json:"product_id"`
	SaleSpaceID uuid.UUID      `gorm:"type:uuid;not null;index:idx_price_product_space_unit,unique" json:"sale_space_id"`
	SaleUnit    enum.SaleUnit  `gorm:"size:20;not null;index:idx_price_product_space_unit,unique" json:"sale_unit"`
	AmountUSD   int64          `gorm:"not null" json:"amount_usd"`
	AmountCDF   int64          `gorm:"not null" json:"amount_cdf"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	SaleSpace *SaleSpace `gorm:"foreignKey:SaleSpaceID" json:"sale_space,omitempty"`
}

// BeforeCreate generates a UUID before creating a new price
func (p *ProductPrice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductPrice model
func (ProductPrice) TableName() string {
	return "product_prices"
}

// ProductCost is the cost of goods for a product per sale unit.
type ProductCost struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index:idx_cost_product_unit,unique" json:"product_id"`
	SaleUnit  enum.SaleUnit  `gorm:"size:20;not null;index:idx_cost_product_unit,unique" json:"sale_unit"`
	AmountUSD int64          `gorm:"not null" json:"amount_usd"`
	AmountCDF int64          `gorm:"not null" json:"amount_cdf"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cost
func (c *ProductCost) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductCost model
func (ProductCost) TableName() string {
	return "product_costs"
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// SaleSpace is a pricing zone (e.g. VIP, Terrasse) with its own price
// list per product.
type SaleSpace struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	Active    bool           `json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale space
func (s *SaleSpace) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleSpace model
func (SaleSpace) TableName() string {
	return "sale_spaces"
}
