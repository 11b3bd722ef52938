package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akomcomputer/shopsuite-backend/api/middleware"
	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/api/validators"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	pkgerrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
)

type createSupportTicketRequest struct {
	CustomerID string `json:"customerId" validate:"omitempty"`
	Title      string `json:"title" validate:"required,max=200"`
	Category   string `json:"category" validate:"omitempty"`
	Priority   string `json:"priority" validate:"omitempty"`
	AssignedTo string `json:"assignedTo" validate:"omitempty,max=80"`
}

type updateSupportStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type appendMessageRequest struct {
	SenderType string `json:"senderType" validate:"omitempty"`
	Body       string `json:"body" validate:"required"`
}

func ListSupportTickets(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.SupportTickets())
	}
}

func OpenSupportTicket(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createSupportTicketRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var category enums.SupportCategory
		if body.Category != "" {
			parsed, err := enums.ParseSupportCategory(body.Category)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			category = parsed
		}

		var priority enums.SupportPriority
		if body.Priority != "" {
			parsed, err := enums.ParseSupportPriority(body.Priority)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid priority"))
				return
			}
			priority = parsed
		}

		ticket, err := st.OpenSupportTicket(r.Context(), store.SupportInput{
			CustomerID: body.CustomerID,
			Title:      body.Title,
			Category:   category,
			Priority:   priority,
			AssignedTo: body.AssignedTo,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, ticket)
	}
}

func UpdateSupportTicketStatus(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateSupportStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseSupportStatus(body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid support status"))
			return
		}

		ticket, err := st.UpdateSupportTicketStatus(r.Context(), chi.URLParam(r, "id"), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if ticket == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "support ticket not found"))
			return
		}

		responses.WriteSuccess(w, ticket)
	}
}

func ListSupportMessages(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := st.SupportTicketByID(id); !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "support ticket not found"))
			return
		}
		responses.WriteSuccess(w, st.MessagesFor(id))
	}
}

// AppendSupportMessage adds one thread entry. The sender defaults to STAFF
// because only authenticated staff reach this endpoint.
func AppendSupportMessage(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body appendMessageRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		senderType := enums.SenderTypeStaff
		if body.SenderType != "" {
			parsed, err := enums.ParseSenderType(body.SenderType)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sender type"))
				return
			}
			senderType = parsed
		}

		message, err := st.AppendSupportMessage(r.Context(), chi.URLParam(r, "id"), store.MessageInput{
			SenderType: senderType,
			SenderID:   middleware.StaffNameFromContext(r.Context()),
			Body:       body.Body,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, message)
	}
}
