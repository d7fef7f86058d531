package enum

// Location is a physical stock location in the restaurant.
type Location string

const (
	LocationFrigo    Location = "FRIGO"
	LocationCasier   Location = "CASIER"
	LocationDepot    Location = "DEPOT"
	LocationCuisine  Location = "CUISINE"
	LocationEconomat Location = "ECONOMAT"
	LocationBar      Location = "BAR"
)

// AllLocations lists every known stock location.
var AllLocations = []Location{
	LocationFrigo,
	LocationCasier,
	LocationDepot,
	LocationCuisine,
	LocationEconomat,
	LocationBar,
}

// Valid reports whether the location is a known value.
func (l Location) Valid() bool {
	for _, loc := range AllLocations {
		if l == loc {
			return true
		}
	}
	return false
}

// DeductionPriority returns the ordered list of locations a deduction
// walks for the given product type. Locations not in the list are still
// used as a last resort by the ledger's fallback.
func DeductionPriority(t ProductType) []Location {
	switch t {
	case ProductTypeBeverage:
		return []Location{LocationFrigo, LocationCasier, LocationDepot}
	case ProductTypeFood:
		return []Location{LocationCuisine, LocationEconomat, LocationDepot}
	default:
		return AllLocations
	}
}

// DefaultLocation returns the location the sale settlement path checks
// and decrements for the given product type.
func DefaultLocation(t ProductType) Location {
	switch t {
	case ProductTypeBeverage:
		return LocationFrigo
	case ProductTypeFood:
		return LocationCuisine
	default:
		return LocationDepot
	}
}
