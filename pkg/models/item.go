package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
)

// InventoryItem is a catalog entry offered on the public storefront. JSON
// field names follow the legacy snapshot layout.
type InventoryItem struct {
	ID            string           `json:"id"`
	Slug          string           `json:"slug"`
	Title         string           `json:"title"`
	Brand         string           `json:"brand"`
	Model         string           `json:"model"`
	Year          string           `json:"year,omitempty"`
	CC            int              `json:"cc,omitempty"`
	MileageKM     int              `json:"mileage_km,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	Status        enums.ItemStatus `json:"status"`
	Documents     string           `json:"documents"`
	LocationText  string           `json:"location_text"`
	Description   string           `json:"description"`
	CoverPhotoURL string           `json:"cover_photo_url"`
	PhotoURLs     []string         `json:"photo_urls_json"`
	SourceType    enums.SourceType `json:"source_type"`
	SourceLeadID  string           `json:"source_fb_post_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}
