package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	pkgerrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
	"github.com/akomcomputer/shopsuite-backend/pkg/models"
)

// PublicCatalog lists the items visible on the storefront.
func PublicCatalog(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.AvailableItems())
	}
}

func PublicCatalogItem(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		item, ok := st.ItemBySlug(slug)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "item not found"))
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// PublicSources lists curated leads that have not been ignored.
func PublicSources(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.CuratedLeads())
	}
}

// publicRepairView strips customer-identifying fields from the ticket.
type publicRepairView struct {
	TicketNo   string             `json:"ticketNo"`
	Status     enums.RepairStatus `json:"status"`
	DeviceType string             `json:"deviceType"`
	BrandModel string             `json:"brandModel"`
	CreatedAt  time.Time          `json:"createdAt"`
	FinishedAt *time.Time         `json:"finishedAt,omitempty"`
	Logs       []models.RepairLog `json:"logs"`
}

// PublicRepairStatus lets a customer track a job by its ticket number.
func PublicRepairStatus(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticketNo := chi.URLParam(r, "ticketNo")
		ticket, ok := st.RepairByTicketNo(ticketNo)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "repair ticket not found"))
			return
		}
		responses.WriteSuccess(w, publicRepairView{
			TicketNo:   ticket.TicketNo,
			Status:     ticket.Status,
			DeviceType: ticket.DeviceType,
			BrandModel: ticket.BrandModel,
			CreatedAt:  ticket.CreatedAt,
			FinishedAt: ticket.FinishedAt,
			Logs:       st.RepairLogsFor(ticket.ID),
		})
	}
}

// PublicSettings exposes the shop contact card.
func PublicSettings(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Settings())
	}
}
