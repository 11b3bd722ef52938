package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
)

// Lead is an imported reference to an external classified-ad post, pending
// triage before optionally becoming inventory. The legacy snapshot stores
// these under "fbPosts".
type Lead struct {
	ID             string           `json:"id"`
	URL            string           `json:"url"`
	Platform       string           `json:"platform"`
	Type           enums.LeadType   `json:"type"`
	TitleText      string           `json:"title_text"`
	PriceText      string           `json:"price_text,omitempty"`
	PriceEstimate  decimal.Decimal  `json:"price_estimate"`
	LocationText   string           `json:"location_text,omitempty"`
	SellerName     string           `json:"seller_name,omitempty"`
	PhoneText      string           `json:"phone_text,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	TrustScore     int              `json:"trust_score"`
	TrustLevel     enums.TrustLevel `json:"trust_level"`
	Status         enums.LeadStatus `json:"status"`
	CuratedPublic  bool             `json:"curated_public"`
	ImportedItemID string           `json:"imported_motorcycle_id,omitempty"`
	DateAdded      time.Time        `json:"dateAdded"`
}
