package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akomcomputer/shopsuite-backend/pkg/config"
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

func productBySKU(t *testing.T, st *Store, sku string) models.Product {
	t.Helper()
	for _, product := range st.Products() {
		if product.SKU == sku {
			return product
		}
	}
	t.Fatalf("product %s not found", sku)
	return models.Product{}
}

func TestAddProductDefaults(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	product, err := st.AddProduct(ctx, ProductInput{})
	require.NoError(t, err)
	require.Equal(t, "SKU-NEW", product.SKU)
	require.Equal(t, "New Product", product.Name)
	require.Equal(t, 0, product.StockQty)
	require.Equal(t, 5, product.MinStockThreshold)

	zero := 0
	product, err = st.AddProduct(ctx, ProductInput{SKU: "X-1", Name: "Explicit", MinStockThreshold: &zero})
	require.NoError(t, err)
	require.Equal(t, 0, product.MinStockThreshold, "explicit zero threshold must not fall back to 5")
}

func TestAdjustStockOutAppendsOneMovementPerCall(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()
	ssd := productBySKU(t, st, "8850001") // seeded stockQty 10

	for i := 1; i <= 3; i++ {
		movement, err := st.AdjustStock(ctx, ssd.ID, 3, enums.MovementTypeOut, enums.MovementRefAudit, "", "audit", "staff-1")
		require.NoError(t, err)
		require.NotNil(t, movement)
		require.Equal(t, enums.MovementTypeOut, movement.Type)
		require.Equal(t, 3, movement.Qty)
		require.Len(t, st.StockMovements(), i)
	}

	require.Equal(t, 1, productBySKU(t, st, "8850001").StockQty)
}

func TestAdjustStockTypes(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()
	ram := productBySKU(t, st, "8850002") // seeded stockQty 5

	_, err := st.AdjustStock(ctx, ram.ID, 7, enums.MovementTypeIn, enums.MovementRefPurchase, "", "restock", "staff-1")
	require.NoError(t, err)
	require.Equal(t, 12, productBySKU(t, st, "8850002").StockQty)

	_, err = st.AdjustStock(ctx, ram.ID, 4, enums.MovementTypeAdjust, enums.MovementRefAudit, "", "recount", "staff-1")
	require.NoError(t, err)
	require.Equal(t, 4, productBySKU(t, st, "8850002").StockQty, "ADJUST sets the absolute quantity")
}

func TestAdjustStockUnknownProductNoOp(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()

	movement, err := st.AdjustStock(ctx, "missing", 3, enums.MovementTypeOut, enums.MovementRefAudit, "", "", "staff-1")
	require.NoError(t, err)
	require.Nil(t, movement)
	require.Empty(t, st.StockMovements())
}

func TestAdjustStockNegativePermissive(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()
	ram := productBySKU(t, st, "8850002")

	_, err := st.AdjustStock(ctx, ram.ID, 8, enums.MovementTypeOut, enums.MovementRefAudit, "", "", "staff-1")
	require.NoError(t, err)
	require.Equal(t, -3, productBySKU(t, st, "8850002").StockQty, "permissive mode lets stock go negative")
}

func TestAdjustStockNegativeClamped(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{ClampNegativeStock: true})
	ctx := context.Background()
	ram := productBySKU(t, st, "8850002")

	_, err := st.AdjustStock(ctx, ram.ID, 8, enums.MovementTypeOut, enums.MovementRefAudit, "", "", "staff-1")
	requireCode(t, err, apperrors.CodeStateConflict)
	require.Equal(t, 5, productBySKU(t, st, "8850002").StockQty)
	require.Empty(t, st.StockMovements(), "rejected adjustment must append nothing")
}

func TestLowStockProducts(t *testing.T) {
	st, _ := newTestStore(t, config.GuardsConfig{})
	ctx := context.Background()
	ram := productBySKU(t, st, "8850002")

	_, err := st.AdjustStock(ctx, ram.ID, 2, enums.MovementTypeAdjust, enums.MovementRefAudit, "", "", "staff-1")
	require.NoError(t, err)

	low := st.LowStockProducts()
	require.Len(t, low, 1)
	require.Equal(t, "8850002", low[0].SKU)
}
