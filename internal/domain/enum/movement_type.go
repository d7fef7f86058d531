package enum

// MovementType is the kind of stock movement recorded in the ledger.
type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT"
	MovementTransfer   MovementType = "TRANSFER"
	MovementLoss       MovementType = "LOSS"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

// Valid reports whether the movement type is a known value.
func (t MovementType) Valid() bool {
	switch t {
	case MovementIn, MovementOut, MovementTransfer, MovementLoss, MovementAdjustment:
		return true
	}
	return false
}
