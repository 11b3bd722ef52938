package models

import (
	"time"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
)

// StockMovement is an append-only record of a quantity change to a product's
// on-hand count. One movement per stock-affecting event.
type StockMovement struct {
	ID        string             `json:"id"`
	ProductID string             `json:"productId"`
	Type      enums.MovementType `json:"type"`
	Qty       int                `json:"qty"`
	RefType   enums.MovementRef  `json:"refType"`
	RefID     string             `json:"refId,omitempty"`
	Note      string             `json:"note,omitempty"`
	Date      time.Time          `json:"date"`
	StaffID   string             `json:"staffId"`
}
