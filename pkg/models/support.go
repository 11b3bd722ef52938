package models

import (
	"time"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
)

// SupportTicket is a support desk case with a chat-style message thread.
type SupportTicket struct {
	ID         string                `json:"id"`
	TicketNo   string                `json:"ticketNo"`
	CustomerID string                `json:"customerId"`
	Title      string                `json:"title"`
	Category   enums.SupportCategory `json:"category"`
	Priority   enums.SupportPriority `json:"priority"`
	Status     enums.SupportStatus   `json:"status"`
	AssignedTo string                `json:"assignedTo,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// Message is one entry of a support ticket's thread.
type Message struct {
	ID         string           `json:"id"`
	TicketID   string           `json:"ticketId"`
	SenderType enums.SenderType `json:"senderType"`
	SenderID   string           `json:"senderId"`
	Body       string           `json:"body"`
	CreatedAt  time.Time        `json:"createdAt"`
	IsRead     bool             `json:"isRead"`
}
