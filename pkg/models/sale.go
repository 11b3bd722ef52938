package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
)

// SaleItem is a line snapshot copied at sale time so later product edits do
// not retroactively change invoice history.
type SaleItem struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Qty          int             `json:"qty"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
}

// Sale is a completed point-of-sale transaction.
type Sale struct {
	ID             string              `json:"id"`
	InvoiceNo      string              `json:"invoiceNo"`
	CustomerID     string              `json:"customerId,omitempty"`
	StaffID        string              `json:"staffId"`
	Items          []SaleItem          `json:"items"`
	TotalAmount    decimal.Decimal     `json:"totalAmount"`
	Discount       decimal.Decimal     `json:"discount"`
	VATRate        decimal.Decimal     `json:"vatRate"`
	NetAmount      decimal.Decimal     `json:"netAmount"`
	PaymentMethod  enums.PaymentMethod `json:"paymentMethod"`
	PaymentSlipURL string              `json:"paymentSlipUrl,omitempty"`
	Date           time.Time           `json:"date"`
}
