package controllers

import (
	"net/http"

	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/api/validators"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

type updateSettingsRequest struct {
	ShopName    string `json:"shopName" validate:"required,max=160"`
	Phone       string `json:"phone" validate:"omitempty,max=40"`
	LineID      string `json:"lineId" validate:"omitempty,max=80"`
	FacebookURL string `json:"facebookUrl" validate:"omitempty,url"`
	MapURL      string `json:"mapUrl" validate:"omitempty,url"`
	Address     string `json:"address" validate:"omitempty,max=400"`
}

func GetSettings(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Settings())
	}
}

// UpdateSettings replaces the shop settings record wholesale.
func UpdateSettings(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateSettingsRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		settings := models.ShopSettings{
			ShopName:    body.ShopName,
			Phone:       body.Phone,
			LineID:      body.LineID,
			FacebookURL: body.FacebookURL,
			MapURL:      body.MapURL,
			Address:     body.Address,
		}
		st.UpdateSettings(r.Context(), settings)

		responses.WriteSuccess(w, settings)
	}
}
