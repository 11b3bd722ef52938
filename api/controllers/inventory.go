package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/api/validators"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	pkgerrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
)

type createItemRequest struct {
	Slug          string          `json:"slug" validate:"required,max=160"`
	Title         string          `json:"title" validate:"required,max=200"`
	Brand         string          `json:"brand" validate:"omitempty,max=80"`
	Model         string          `json:"model" validate:"omitempty,max=80"`
	Year          string          `json:"year" validate:"omitempty,max=10"`
	CC            int             `json:"cc" validate:"omitempty,min=0"`
	MileageKM     int             `json:"mileageKm" validate:"omitempty,min=0"`
	Price         decimal.Decimal `json:"price"`
	Status        string          `json:"status" validate:"omitempty"`
	Documents     string          `json:"documents" validate:"omitempty,max=200"`
	LocationText  string          `json:"locationText" validate:"omitempty,max=200"`
	Description   string          `json:"description" validate:"omitempty"`
	CoverPhotoURL string          `json:"coverPhotoUrl" validate:"omitempty,url"`
	PhotoURLs     []string        `json:"photoUrls" validate:"omitempty,dive,url"`
}

func ListInventory(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Items())
	}
}

func CreateInventoryItem(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if body.Price.IsNegative() {
			err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"price": "must not be negative"})
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var status enums.ItemStatus
		if body.Status != "" {
			parsed, err := enums.ParseItemStatus(body.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			status = parsed
		}

		item, err := st.AddInventoryItem(r.Context(), store.ItemInput{
			Slug:          body.Slug,
			Title:         body.Title,
			Brand:         body.Brand,
			Model:         body.Model,
			Year:          body.Year,
			CC:            body.CC,
			MileageKM:     body.MileageKM,
			Price:         body.Price,
			Status:        status,
			Documents:     body.Documents,
			LocationText:  body.LocationText,
			Description:   body.Description,
			CoverPhotoURL: body.CoverPhotoURL,
			PhotoURLs:     body.PhotoURLs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// DeleteInventoryItem removes an item. Deleting an unknown id is a no-op and
// still answers 200, matching the store's idempotent delete.
func DeleteInventoryItem(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		st.DeleteInventoryItem(r.Context(), id)
		responses.WriteSuccess(w, map[string]string{"id": id})
	}
}
