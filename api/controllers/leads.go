package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/api/validators"
	"github.com/akomcomputer/shopsuite-backend/internal/leads"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	pkgerrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
)

type createLeadRequest struct {
	URL           string `json:"url" validate:"required,url"`
	Platform      string `json:"platform" validate:"omitempty,max=80"`
	Type          string `json:"type" validate:"omitempty"`
	TitleText     string `json:"titleText" validate:"omitempty,max=300"`
	PriceText     string `json:"priceText" validate:"omitempty,max=80"`
	LocationText  string `json:"locationText" validate:"omitempty,max=200"`
	SellerName    string `json:"sellerName" validate:"omitempty,max=120"`
	PhoneText     string `json:"phoneText" validate:"omitempty,max=40"`
	Notes         string `json:"notes" validate:"omitempty"`
	CuratedPublic bool   `json:"curatedPublic"`
}

func ListLeads(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Leads())
	}
}

func CreateLead(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createLeadRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var leadType enums.LeadType
		if body.Type != "" {
			parsed, err := enums.ParseLeadType(body.Type)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid lead type"))
				return
			}
			leadType = parsed
		}

		lead, err := st.AddLead(r.Context(), store.LeadInput{
			URL:           body.URL,
			Platform:      body.Platform,
			Type:          leadType,
			TitleText:     body.TitleText,
			PriceText:     body.PriceText,
			LocationText:  body.LocationText,
			SellerName:    body.SellerName,
			PhoneText:     body.PhoneText,
			Notes:         body.Notes,
			CuratedPublic: body.CuratedPublic,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, lead)
	}
}

// ScoreLead runs the two-phase AI scoring round trip for one lead.
func ScoreLead(svc leads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeExternal, "lead scoring is not configured"))
			return
		}

		lead, err := svc.ScoreLead(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lead)
	}
}

// ImportLead promotes a lead into the inventory catalog.
func ImportLead(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := st.ImportLead(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

func IgnoreLead(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		st.IgnoreLead(r.Context(), id)
		responses.WriteSuccess(w, map[string]string{"id": id})
	}
}
