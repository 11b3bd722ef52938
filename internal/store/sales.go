package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// CartLine is one requested sale line; price and name are snapshotted from
// the product at sale time.
type CartLine struct {
	ProductID string
	Qty       int
}

// CreateSale resolves each cart line, snapshots the product name and price,
// emits one OUT movement per non-Service line (refType SALE), and prepends a
// sale with the next sequential invoice number. Unknown products are
// skipped. The per-line stock adjustments and the sale itself land in a
// single notify/persist.
func (s *Store) CreateSale(ctx context.Context, lines []CartLine, customerID string, paymentMethod enums.PaymentMethod, staffID string) (*models.Sale, error) {
	s.mu.Lock()

	// In clamp mode the whole sale is rejected up front so a failing line
	// cannot leave earlier lines half-applied. Quantities are totalled per
	// product first; duplicate cart lines must not pass individually.
	if s.guards.ClampNegativeStock {
		requested := make(map[string]int, len(lines))
		for _, line := range lines {
			requested[line.ProductID] += line.Qty
		}
		for _, product := range s.state.Products {
			qty, ok := requested[product.ID]
			if !ok || product.Category == enums.ProductCategoryService {
				continue
			}
			if product.StockQty-qty < 0 {
				s.mu.Unlock()
				return nil, apperrors.New(apperrors.CodeStateConflict, "stock cannot go negative").
					WithDetails(map[string]any{"product_id": product.ID, "stock_qty": product.StockQty, "requested": qty})
			}
		}
	}

	saleID := s.newID()
	items := make([]models.SaleItem, 0, len(lines))
	total := decimal.Zero

	for _, line := range lines {
		var product *models.Product
		for i := range s.state.Products {
			if s.state.Products[i].ID == line.ProductID {
				product = &s.state.Products[i]
				break
			}
		}
		if product == nil {
			continue
		}

		lineTotal := product.SellPrice.Mul(decimal.NewFromInt(int64(line.Qty)))
		items = append(items, models.SaleItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			Qty:          line.Qty,
			PricePerUnit: product.SellPrice,
			Discount:     decimal.Zero,
			Total:        lineTotal,
		})
		total = total.Add(lineTotal)

		if product.Category != enums.ProductCategoryService {
			if _, err := s.applyStockLocked(product.ID, line.Qty, enums.MovementTypeOut, enums.MovementRefSale, saleID, "POS Sale", staffID); err != nil {
				s.mu.Unlock()
				return nil, err
			}
		}
	}

	now := s.now()
	sale := models.Sale{
		ID:            saleID,
		InvoiceNo:     fmt.Sprintf("INV-%d%d-%04d", now.Year(), int(now.Month()), len(s.state.Sales)+1),
		CustomerID:    customerID,
		StaffID:       staffID,
		Items:         items,
		TotalAmount:   total,
		Discount:      decimal.Zero,
		VATRate:       decimal.Zero,
		NetAmount:     total,
		PaymentMethod: paymentMethod,
		Date:          now,
	}
	s.state.Sales = append([]models.Sale{sale}, s.state.Sales...)
	s.mu.Unlock()

	s.commit(ctx, "createSale")
	return &sale, nil
}
