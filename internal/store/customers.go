package store

import (
	"context"
	"fmt"

	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// CustomerInput carries the caller-supplied fields for a new customer.
type CustomerInput struct {
	Name    string
	Phone   string
	LineID  string
	Address string
	Notes   string
	Tags    []string
}

// AddCustomer assigns the next sequential CUS- code and prepends the record.
// Codes derive from the current count and are never reused.
func (s *Store) AddCustomer(ctx context.Context, input CustomerInput) (*models.Customer, error) {
	name := input.Name
	if name == "" {
		name = "Unknown"
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	s.mu.Lock()
	customer := models.Customer{
		ID:        s.newID(),
		Code:      fmt.Sprintf("CUS-%03d", len(s.state.Customers)+1),
		Name:      name,
		Phone:     input.Phone,
		LineID:    input.LineID,
		Address:   input.Address,
		Notes:     input.Notes,
		Tags:      tags,
		CreatedAt: s.now(),
	}
	s.state.Customers = append([]models.Customer{customer}, s.state.Customers...)
	s.mu.Unlock()

	s.commit(ctx, "addCustomer")
	return &customer, nil
}
