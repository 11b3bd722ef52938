package store

import (
	"context"
	"fmt"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// SupportInput carries the caller-supplied fields for a new support ticket.
type SupportInput struct {
	CustomerID string
	Title      string
	Category   enums.SupportCategory
	Priority   enums.SupportPriority
	AssignedTo string
}

// MessageInput carries one thread entry.
type MessageInput struct {
	SenderType enums.SenderType
	SenderID   string
	Body       string
}

// OpenSupportTicket assigns the next SUP- number and opens the case.
func (s *Store) OpenSupportTicket(ctx context.Context, input SupportInput) (*models.SupportTicket, error) {
	category := input.Category
	if category == "" {
		category = enums.SupportCategoryOther
	}
	priority := input.Priority
	if priority == "" {
		priority = enums.SupportPriorityMedium
	}

	s.mu.Lock()
	now := s.now()
	ticket := models.SupportTicket{
		ID:         s.newID(),
		TicketNo:   fmt.Sprintf("SUP-%03d", len(s.state.SupportTickets)+1),
		CustomerID: input.CustomerID,
		Title:      input.Title,
		Category:   category,
		Priority:   priority,
		Status:     enums.SupportStatusOpen,
		AssignedTo: input.AssignedTo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.state.SupportTickets = append([]models.SupportTicket{ticket}, s.state.SupportTickets...)
	s.mu.Unlock()

	s.commit(ctx, "openSupportTicket")
	return &ticket, nil
}

// UpdateSupportTicketStatus replaces the case status. Unknown tickets no-op.
func (s *Store) UpdateSupportTicketStatus(ctx context.Context, ticketID string, status enums.SupportStatus) (*models.SupportTicket, error) {
	s.mu.Lock()
	idx := -1
	for i, ticket := range s.state.SupportTickets {
		if ticket.ID == ticketID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, nil
	}

	ticket := s.state.SupportTickets[idx]
	ticket.Status = status
	ticket.UpdatedAt = s.now()
	s.state.SupportTickets[idx] = ticket
	s.mu.Unlock()

	s.commit(ctx, "updateSupportTicketStatus")
	return &ticket, nil
}

// AppendSupportMessage adds one entry to the ticket's thread and bumps the
// parent's updatedAt. The ticket must exist.
func (s *Store) AppendSupportMessage(ctx context.Context, ticketID string, input MessageInput) (*models.Message, error) {
	s.mu.Lock()
	idx := -1
	for i, ticket := range s.state.SupportTickets {
		if ticket.ID == ticketID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, apperrors.New(apperrors.CodeNotFound, "support ticket not found")
	}

	now := s.now()
	message := models.Message{
		ID:         s.newID(),
		TicketID:   ticketID,
		SenderType: input.SenderType,
		SenderID:   input.SenderID,
		Body:       input.Body,
		CreatedAt:  now,
	}
	s.state.Messages = append([]models.Message{message}, s.state.Messages...)

	ticket := s.state.SupportTickets[idx]
	ticket.UpdatedAt = now
	s.state.SupportTickets[idx] = ticket
	s.mu.Unlock()

	s.commit(ctx, "appendSupportMessage")
	return &message, nil
}
