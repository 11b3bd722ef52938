package controllers

import (
	"net/http"

	"github.com/akomcomputer/shopsuite-backend/api/middleware"
	"github.com/akomcomputer/shopsuite-backend/api/responses"
	"github.com/akomcomputer/shopsuite-backend/api/validators"
	"github.com/akomcomputer/shopsuite-backend/internal/store"
	"github.com/akomcomputer/shopsuite-backend/pkg/enums"
	pkgerrors "github.com/akomcomputer/shopsuite-backend/pkg/errors"
	"github.com/akomcomputer/shopsuite-backend/pkg/logger"
)

type cartLineRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty" validate:"required,min=1"`
}

type createSaleRequest struct {
	Lines         []cartLineRequest `json:"lines" validate:"required,min=1,dive"`
	CustomerID    string            `json:"customerId" validate:"omitempty"`
	PaymentMethod string            `json:"paymentMethod" validate:"required"`
}

func ListSales(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Sales())
	}
}

// CreateSale checks out a cart. Stock movements for the non-service lines
// land in the same commit as the sale itself.
func CreateSale(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createSaleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		paymentMethod, err := enums.ParsePaymentMethod(body.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method"))
			return
		}

		lines := make([]store.CartLine, 0, len(body.Lines))
		for _, line := range body.Lines {
			lines = append(lines, store.CartLine{ProductID: line.ProductID, Qty: line.Qty})
		}

		staffID := middleware.StaffNameFromContext(r.Context())
		sale, err := st.CreateSale(r.Context(), lines, body.CustomerID, paymentMethod, staffID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sale)
	}
}
