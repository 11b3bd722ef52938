package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/akomcomputer/shopsuite-backend/api/middleware"
	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/api/validators"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	pkgerrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
)

type createRepairRequest struct {
	CustomerID    string          `json:"customerId" validate:"omitempty"`
	DeviceType    string          `json:"deviceType" validate:"required,max=80"`
	BrandModel    string          `json:"brandModel" validate:"omitempty,max=160"`
	SerialNo      string          `json:"serialNo" validate:"omitempty,max=80"`
	Symptoms      string          `json:"symptoms" validate:"required"`
	DepositAmount decimal.Decimal `json:"depositAmount"`
	EstimateCost  decimal.Decimal `json:"estimateCost"`
	TechnicianID  string          `json:"technicianId" validate:"omitempty,max=80"`
}

type updateRepairStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"omitempty,max=500"`
}

func ListRepairs(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Repairs())
	}
}

func CreateRepairTicket(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createRepairRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ticket, err := st.CreateRepairTicket(r.Context(), store.RepairInput{
			CustomerID:    body.CustomerID,
			DeviceType:    body.DeviceType,
			BrandModel:    body.BrandModel,
			SerialNo:      body.SerialNo,
			Symptoms:      body.Symptoms,
			DepositAmount: body.DepositAmount,
			EstimateCost:  body.EstimateCost,
			TechnicianID:  body.TechnicianID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, ticket)
	}
}

// UpdateRepairStatus moves a ticket through the workflow and appends a log
// entry stamped with the acting staff name.
func UpdateRepairStatus(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateRepairStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseRepairStatus(body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid repair status"))
			return
		}

		staffID := middleware.StaffNameFromContext(r.Context())
		ticket, err := st.UpdateRepairStatus(r.Context(), chi.URLParam(r, "id"), status, body.Note, staffID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if ticket == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "repair ticket not found"))
			return
		}

		responses.WriteSuccess(w, ticket)
	}
}

func ListRepairLogs(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := st.RepairByID(id); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "repair ticket not found"))
			return
		}
		responses.WriteSuccess(w, st.RepairLogsFor(id))
	}
}
