package snapshot

import (
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// State is the whole-store snapshot persisted after every mutation. Field
// names match the legacy payload so existing slots keep loading.
type State struct {
	Motos          []models.InventoryItem `json:"motos"`
	FBPosts        []models.Lead          `json:"fbPosts"`
	Customers      []models.Customer      `json:"customers"`
	Products       []models.Product       `json:"products"`
	Repairs        []models.RepairTicket  `json:"repairs"`
	RepairLogs     []models.RepairLog     `json:"repairLogs"`
	Sales          []models.Sale          `json:"sales"`
	StockMovements []models.StockMovement `json:"stockMovements"`
	SupportTickets []models.SupportTicket `json:"supportTickets"`
	Messages       []models.Message       `json:"messages"`
	Settings       *models.ShopSettings   `json:"settings"`
}
