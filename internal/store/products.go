package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// ProductInput carries the caller-supplied fields for a new product.
type ProductInput struct {
	SKU               string
	Name              string
	Category          string
	CostPrice         decimal.Decimal
	SellPrice         decimal.Decimal
	StockQty          int
	MinStockThreshold *int
	Unit              string
	CoverPhotoURL     string
}

// AddProduct fills defaults (stockQty 0, threshold 5) and prepends.
func (s *Store) AddProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	sku := input.SKU
	if sku == "" {
		sku = "SKU-NEW"
	}
	name := input.Name
	if name == "" {
		name = "New Product"
	}
	threshold := 5
	if input.MinStockThreshold != nil {
		threshold = *input.MinStockThreshold
	}

	s.mu.Lock()
	product := models.Product{
		ID:                s.newID(),
		SKU:               sku,
		Name:              name,
		Category:          input.Category,
		CostPrice:         input.CostPrice,
		SellPrice:         input.SellPrice,
		StockQty:          input.StockQty,
		MinStockThreshold: threshold,
		Unit:              input.Unit,
		CoverPhotoURL:     input.CoverPhotoURL,
	}
	s.state.Products = append([]models.Product{product}, s.state.Products...)
	s.mu.Unlock()

	s.commit(ctx, "addProduct")
	return &product, nil
}

// AdjustStock appends one movement and recomputes the on-hand quantity:
// IN adds, OUT subtracts, ADJUST sets the absolute value. An unknown product
// is a silent no-op. In clamp mode an OUT that would drive the quantity
// negative is rejected with STATE_CONFLICT and appends nothing.
func (s *Store) AdjustStock(ctx context.Context, productID string, qty int, movType enums.MovementType, refType enums.MovementRef, refID, note, staffID string) (*models.StockMovement, error) {
	s.mu.Lock()
	movement, err := s.applyStockLocked(productID, qty, movType, refType, refID, note, staffID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, nil
	}

	s.commit(ctx, "adjustStock")
	return movement, nil
}

// applyStockLocked is the guts of AdjustStock, shared with CreateSale so a
// multi-line sale batches into one notify/persist. Caller holds the lock.
func (s *Store) applyStockLocked(productID string, qty int, movType enums.MovementType, refType enums.MovementRef, refID, note, staffID string) (*models.StockMovement, error) {
	idx := -1
	for i, product := range s.state.Products {
		if product.ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	product := s.state.Products[idx]
	newQty := product.StockQty
	switch movType {
	case enums.MovementTypeIn:
		newQty += qty
	case enums.MovementTypeOut:
		newQty -= qty
	case enums.MovementTypeAdjust:
		newQty = qty
	}

	if s.guards.ClampNegativeStock && newQty < 0 {
		return nil, apperrors.New(apperrors.CodeStateConflict, "stock cannot go negative").
			WithDetails(map[string]any{"product_id": productID, "stock_qty": product.StockQty, "requested": qty})
	}

	movement := models.StockMovement{
		ID:        s.newID(),
		ProductID: productID,
		Type:      movType,
		Qty:       qty,
		RefType:   refType,
		RefID:     refID,
		Note:      note,
		Date:      s.now(),
		StaffID:   staffID,
	}
	s.state.StockMovements = append([]models.StockMovement{movement}, s.state.StockMovements...)

	product.StockQty = newQty
	s.state.Products[idx] = product
	return &movement, nil
}
