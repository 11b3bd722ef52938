package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	apperrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

const systemActor = "SYSTEM"

// RepairInput carries the caller-supplied fields for a new repair ticket.
type RepairInput struct {
	CustomerID    string
	DeviceType    string
	BrandModel    string
	SerialNo      string
	Symptoms      string
	DepositAmount decimal.Decimal
	EstimateCost  decimal.Decimal
	TechnicianID  string
	Images        []models.FileAsset
}

// CreateRepairTicket assigns the next JOB- number, starts the ticket in
// RECEIVED, and appends the initial SYSTEM log entry.
func (s *Store) CreateRepairTicket(ctx context.Context, input RepairInput) (*models.RepairTicket, error) {
	images := input.Images
	if images == nil {
		images = []models.FileAsset{}
	}

	s.mu.Lock()
	now := s.now()
	ticket := models.RepairTicket{
		ID:            s.newID(),
		TicketNo:      fmt.Sprintf("JOB-%d-%03d", now.Year(), len(s.state.Repairs)+1),
		CustomerID:    input.CustomerID,
		DeviceType:    input.DeviceType,
		BrandModel:    input.BrandModel,
		SerialNo:      input.SerialNo,
		Symptoms:      input.Symptoms,
		DepositAmount: input.DepositAmount,
		Status:        enums.RepairStatusReceived,
		Images:        images,
		EstimateCost:  input.EstimateCost,
		FinalCost:     decimal.Zero,
		TechnicianID:  input.TechnicianID,
		CreatedAt:     now,
	}
	s.state.Repairs = append([]models.RepairTicket{ticket}, s.state.Repairs...)
	s.appendRepairLogLocked(ticket.ID, enums.RepairStatusReceived, "Job Created", systemActor)
	s.mu.Unlock()

	s.commit(ctx, "createRepairTicket")
	return &ticket, nil
}

// UpdateRepairStatus replaces the ticket status and appends a log entry.
// Unknown tickets no-op. In guard mode an illegal transition is rejected
// with STATE_CONFLICT and no log is appended. Reaching DONE or DELIVERED
// stamps finishedAt.
func (s *Store) UpdateRepairStatus(ctx context.Context, ticketID string, status enums.RepairStatus, note, staffID string) (*models.RepairTicket, error) {
	s.mu.Lock()
	idx := -1
	for i, ticket := range s.state.Repairs {
		if ticket.ID == ticketID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, nil
	}

	ticket := s.state.Repairs[idx]
	if s.guards.GuardRepairTransitions && !ticket.Status.CanTransitionTo(status) {
		s.mu.Unlock()
		return nil, apperrors.New(apperrors.CodeStateConflict, "illegal repair status transition").
			WithDetails(map[string]string{"from": ticket.Status.String(), "to": status.String()})
	}

	ticket.Status = status
	if status == enums.RepairStatusDone || status == enums.RepairStatusDelivered {
		finished := s.now()
		ticket.FinishedAt = &finished
	}
	s.state.Repairs[idx] = ticket
	s.appendRepairLogLocked(ticket.ID, status, note, staffID)
	s.mu.Unlock()

	s.commit(ctx, "updateRepairStatus")
	return &ticket, nil
}

// appendRepairLogLocked prepends one history entry. Logs are append-only;
// nothing ever mutates or removes them. Caller holds the lock.
func (s *Store) appendRepairLogLocked(repairID string, status enums.RepairStatus, note, updatedBy string) {
	entry := models.RepairLog{
		ID:        s.newID(),
		RepairID:  repairID,
		Status:    status,
		Note:      note,
		UpdatedBy: updatedBy,
		Timestamp: s.now(),
	}
	s.state.RepairLogs = append([]models.RepairLog{entry}, s.state.RepairLogs...)
}
