package enum

// ProductType classifies a product for stock routing and reporting.
type ProductType string

const (
	ProductTypeBeverage    ProductType = "BEVERAGE"
	ProductTypeFood        ProductType = "FOOD"
	ProductTypeNonVendable ProductType = "NON_VENDABLE"
)

// Valid reports whether the product type is a known value.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeBeverage, ProductTypeFood, ProductTypeNonVendable:
		return true
	}
	return false
}

// SaleUnit is the denomination a product is sold in.
type SaleUnit string

const (
	SaleUnitBottle    SaleUnit = "BOTTLE"
	SaleUnitPlate     SaleUnit = "PLATE"
	SaleUnitHalfPlate SaleUnit = "HALF_PLATE"
	SaleUnitMeasure   SaleUnit = "MEASURE"
	SaleUnitPiece     SaleUnit = "PIECE"
)

// Valid reports whether the sale unit is a known value.
func (u SaleUnit) Valid() bool {
	switch u {
	case SaleUnitBottle, SaleUnitPlate, SaleUnitHalfPlate, SaleUnitMeasure, SaleUnitPiece:
		return true
	}
	return false
}
