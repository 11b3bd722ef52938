package store

import (
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// Read accessors return slice copies so render layers cannot mutate owned
// state. Lookups that miss return (zero, false) rather than erroring.

func (s *Store) Items() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.InventoryItem(nil), s.state.Motos...)
}

// AvailableItems lists the public storefront catalog.
func (s *Store) AvailableItems() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.InventoryItem, 0, len(s.state.Motos))
	for _, item := range s.state.Motos {
		if item.Status == enums.ItemStatusAvailable {
			items = append(items, item)
		}
	}
	return items
}

func (s *Store) ItemBySlug(slug string) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.Motos {
		if item.Slug == slug {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

func (s *Store) Leads() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Lead(nil), s.state.FBPosts...)
}

// CuratedLeads lists leads flagged for the public sources page, excluding
// ignored ones.
func (s *Store) CuratedLeads() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	leads := make([]models.Lead, 0, len(s.state.FBPosts))
	for _, lead := range s.state.FBPosts {
		if lead.CuratedPublic && lead.Status != enums.LeadStatusIgnored {
			leads = append(leads, lead)
		}
	}
	return leads
}

func (s *Store) LeadByID(id string) (models.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, lead := range s.state.FBPosts {
		if lead.ID == id {
			return lead, true
		}
	}
	return models.Lead{}, false
}

func (s *Store) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Customer(nil), s.state.Customers...)
}

func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.state.Products...)
}

// LowStockProducts lists products at or below their reorder threshold.
func (s *Store) LowStockProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]models.Product, 0)
	for _, product := range s.state.Products {
		if product.LowStock() {
			products = append(products, product)
		}
	}
	return products
}

func (s *Store) StockMovements() []models.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.StockMovement(nil), s.state.StockMovements...)
}

func (s *Store) Sales() []models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Sale(nil), s.state.Sales...)
}

func (s *Store) Repairs() []models.RepairTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RepairTicket(nil), s.state.Repairs...)
}

func (s *Store) RepairByID(id string) (models.RepairTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ticket := range s.state.Repairs {
		if ticket.ID == id {
			return ticket, true
		}
	}
	return models.RepairTicket{}, false
}

// RepairByTicketNo resolves the public status-lookup number.
func (s *Store) RepairByTicketNo(ticketNo string) (models.RepairTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ticket := range s.state.Repairs {
		if ticket.TicketNo == ticketNo {
			return ticket, true
		}
	}
	return models.RepairTicket{}, false
}

// RepairLogsFor returns a ticket's history, oldest entry last (logs are
// prepended like every other collection).
func (s *Store) RepairLogsFor(repairID string) []models.RepairLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := make([]models.RepairLog, 0)
	for _, entry := range s.state.RepairLogs {
		if entry.RepairID == repairID {
			logs = append(logs, entry)
		}
	}
	return logs
}

func (s *Store) SupportTickets() []models.SupportTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SupportTicket(nil), s.state.SupportTickets...)
}

func (s *Store) SupportTicketByID(id string) (models.SupportTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ticket := range s.state.SupportTickets {
		if ticket.ID == id {
			return ticket, true
		}
	}
	return models.SupportTicket{}, false
}

// MessagesFor returns a support ticket's thread.
func (s *Store) MessagesFor(ticketID string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]models.Message, 0)
	for _, message := range s.state.Messages {
		if message.TicketID == ticketID {
			messages = append(messages, message)
		}
	}
	return messages
}

func (s *Store) Settings() models.ShopSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Settings == nil {
		return models.ShopSettings{}
	}
	return *s.state.Settings
}
