package models

import "github.com/shopspring/decimal"

func init() {
	// The legacy snapshot stores money fields as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ShopSettings is the shop's public contact card.
type ShopSettings struct {
	ShopName    string `json:"shopName"`
	Phone       string `json:"phone"`
	LineID      string `json:"lineId"`
	FacebookURL string `json:"facebookUrl,omitempty"`
	MapURL      string `json:"mapUrl,omitempty"`
	Address     string `json:"address"`
}
