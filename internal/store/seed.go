package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/internal/snapshot"
	"github.com/akomcomputer/shopsuite-backend/pkg/config"
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// DefaultSeeds builds the first-boot dataset used when the snapshot slot is
// empty or a collection cannot be restored: two customers, three products
// (one Service SKU), and one in-progress repair job.
func DefaultSeeds(shop config.ShopConfig, now func() time.Time) snapshot.State {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	createdAt := now()

	vip := models.Customer{
		ID:        uuid.NewString(),
		Code:      "CUS-001",
		Name:      "Somchai Jaidee",
		Phone:     "081-111-2222",
		Tags:      []string{"VIP"},
		CreatedAt: createdAt,
	}
	corporate := models.Customer{
		ID:        uuid.NewString(),
		Code:      "CUS-002",
		Name:      "IT Solution Co., Ltd.",
		Phone:     "02-999-8888",
		Tags:      []string{"CORPORATE"},
		CreatedAt: createdAt,
	}

	products := []models.Product{
		{
			ID:                uuid.NewString(),
			SKU:               "8850001",
			Name:              "SSD 250GB Samsung",
			Category:          "Storage",
			CostPrice:         decimal.NewFromInt(800),
			SellPrice:         decimal.NewFromInt(1200),
			StockQty:          10,
			MinStockThreshold: 2,
			Unit:              "box",
		},
		{
			ID:                uuid.NewString(),
			SKU:               "8850002",
			Name:              "RAM 8GB DDR4 Kingston",
			Category:          "Memory",
			CostPrice:         decimal.NewFromInt(600),
			SellPrice:         decimal.NewFromInt(950),
			StockQty:          5,
			MinStockThreshold: 2,
			Unit:              "pcs",
		},
		{
			ID:                uuid.NewString(),
			SKU:               "SERVICE-01",
			Name:              "Diagnostic labor",
			Category:          enums.ProductCategoryService,
			CostPrice:         decimal.Zero,
			SellPrice:         decimal.NewFromInt(300),
			StockQty:          9999,
			MinStockThreshold: 0,
			Unit:              "hr",
		},
	}

	repairs := []models.RepairTicket{
		{
			ID:            uuid.NewString(),
			TicketNo:      "JOB-2401",
			CustomerID:    vip.ID,
			DeviceType:    "Laptop",
			BrandModel:    "Dell Inspiron",
			Symptoms:      "Does not power on",
			DepositAmount: decimal.Zero,
			Status:        enums.RepairStatusChecking,
			Images:        []models.FileAsset{},
			EstimateCost:  decimal.NewFromInt(1500),
			FinalCost:     decimal.Zero,
			CreatedAt:     createdAt,
		},
	}

	return snapshot.State{
		Customers: []models.Customer{vip, corporate},
		Products:  products,
		Repairs:   repairs,
		Settings: &models.ShopSettings{
			ShopName:    shop.Name,
			Phone:       shop.Phone,
			LineID:      shop.LineID,
			FacebookURL: shop.FacebookURL,
			MapURL:      shop.MapURL,
			Address:     shop.Address,
		},
	}
}
