package controllers

import (
	"net/http"

	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/api/validators"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
)

type createCustomerRequest struct {
	Name    string   `json:"name" validate:"omitempty,max=160"`
	Phone   string   `json:"phone" validate:"omitempty,max=40"`
	LineID  string   `json:"lineId" validate:"omitempty,max=80"`
	Address string   `json:"address" validate:"omitempty,max=400"`
	Notes   string   `json:"notes" validate:"omitempty"`
	Tags    []string `json:"tags" validate:"omitempty,dive,max=40"`
}

func ListCustomers(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Customers())
	}
}

func CreateCustomer(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createCustomerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		customer, err := st.AddCustomer(r.Context(), store.CustomerInput{
			Name:    body.Name,
			Phone:   body.Phone,
			LineID:  body.LineID,
			Address: body.Address,
			Notes:   body.Notes,
			Tags:    body.Tags,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, customer)
	}
}
