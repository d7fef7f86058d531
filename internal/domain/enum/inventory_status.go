package enum

// InventoryStatus is the lifecycle state of an inventory count session.
type InventoryStatus string

const (
	InventoryOpen   InventoryStatus = "OPEN"
	InventoryClosed InventoryStatus = "CLOSED"
)
