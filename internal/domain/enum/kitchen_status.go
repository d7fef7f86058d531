package enum

// KitchenStatus is the state of a kitchen order on the display.
// Transitions are driven by user action only; the endpoint does not
// prevent skipping states.
type KitchenStatus string

const (
	KitchenPending       KitchenStatus = "PENDING"
	KitchenInPreparation KitchenStatus = "IN_PREPARATION"
	KitchenReady         KitchenStatus = "READY"
	KitchenDelivered     KitchenStatus = "DELIVERED"
)

// Valid reports whether the kitchen status is a known value.
func (s KitchenStatus) Valid() bool {
	switch s {
	case KitchenPending, KitchenInPreparation, KitchenReady, KitchenDelivered:
		return true
	}
	return false
}
