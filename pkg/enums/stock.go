package enums

import "fmt"

// MovementType classifies a stock movement. IN and OUT are deltas; ADJUST
// sets the absolute on-hand quantity.
type MovementType string

const (
	MovementTypeIn     MovementType = "IN"
	MovementTypeOut    MovementType = "OUT"
	MovementTypeAdjust MovementType = "ADJUST"
)

var validMovementTypes = []MovementType{
	MovementTypeIn,
	MovementTypeOut,
	MovementTypeAdjust,
}

// String implements fmt.Stringer.
func (m MovementType) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MovementType.
func (m MovementType) IsValid() bool {
	for _, candidate := range validMovementTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMovementType converts raw input into a MovementType.
func ParseMovementType(value string) (MovementType, error) {
	for _, candidate := range validMovementTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid movement type %q", value)
}

// MovementRef names the event that produced a stock movement.
type MovementRef string

const (
	MovementRefSale     MovementRef = "SALE"
	MovementRefRepair   MovementRef = "REPAIR"
	MovementRefPurchase MovementRef = "PURCHASE"
	MovementRefAudit    MovementRef = "AUDIT"
)

var validMovementRefs = []MovementRef{
	MovementRefSale,
	MovementRefRepair,
	MovementRefPurchase,
	MovementRefAudit,
}

// String implements fmt.Stringer.
func (m MovementRef) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MovementRef.
func (m MovementRef) IsValid() bool {
	for _, candidate := range validMovementRefs {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMovementRef converts raw input into a MovementRef.
func ParseMovementRef(value string) (MovementRef, error) {
	for _, candidate := range validMovementRefs {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid movement ref %q", value)
}
