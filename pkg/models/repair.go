package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
)

// FileAsset is an uploaded image or document reference.
type FileAsset struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	MimeType  string `json:"mimeType"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"sizeBytes"`
	URL       string `json:"url"`
}

// RepairTicket is a tracked service job with a public-facing status history.
type RepairTicket struct {
	ID            string             `json:"id"`
	TicketNo      string             `json:"ticketNo"`
	CustomerID    string             `json:"customerId"`
	DeviceType    string             `json:"deviceType"`
	BrandModel    string             `json:"brandModel"`
	SerialNo      string             `json:"serialNo,omitempty"`
	Symptoms      string             `json:"symptoms"`
	DepositAmount decimal.Decimal    `json:"depositAmount"`
	Status        enums.RepairStatus `json:"status"`
	Images        []FileAsset        `json:"images"`
	EstimateCost  decimal.Decimal    `json:"estimateCost"`
	FinalCost     decimal.Decimal    `json:"finalCost"`
	TechnicianID  string             `json:"technicianId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	FinishedAt    *time.Time         `json:"finishedAt,omitempty"`
}

// RepairLog is one entry of a ticket's append-only status history.
type RepairLog struct {
	ID        string             `json:"id"`
	RepairID  string             `json:"repairId"`
	Status    enums.RepairStatus `json:"status"`
	Note      string             `json:"note"`
	UpdatedBy string             `json:"updatedBy"`
	Timestamp time.Time          `json:"timestamp"`
}
