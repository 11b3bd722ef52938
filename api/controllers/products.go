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

type createProductRequest struct {
	SKU               string          `json:"sku" validate:"omitempty,max=60"`
	Name              string          `json:"name" validate:"omitempty,max=200"`
	Category          string          `json:"category" validate:"omitempty,max=80"`
	CostPrice         decimal.Decimal `json:"costPrice"`
	SellPrice         decimal.Decimal `json:"sellPrice"`
	StockQty          int             `json:"stockQty" validate:"omitempty,min=0"`
	MinStockThreshold *int            `json:"minStockThreshold" validate:"omitempty,min=0"`
	Unit              string          `json:"unit" validate:"omitempty,max=20"`
	CoverPhotoURL     string          `json:"coverPhotoUrl" validate:"omitempty,url"`
}

type adjustStockRequest struct {
	Qty     int    `json:"qty" validate:"required"`
	Type    string `json:"type" validate:"required"`
	RefType string `json:"refType" validate:"omitempty"`
	RefID   string `json:"refId" validate:"omitempty,max=80"`
	Note    string `json:"note" validate:"omitempty,max=300"`
}

func ListProducts(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.Products())
	}
}

// ListLowStockProducts returns products at or below their restock threshold.
func ListLowStockProducts(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.LowStockProducts())
	}
}

func ListStockMovements(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, st.StockMovements())
	}
}

func CreateProduct(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if body.CostPrice.IsNegative() || body.SellPrice.IsNegative() {
			err := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"price": "must not be negative"})
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := st.AddProduct(r.Context(), store.ProductInput{
			SKU:               body.SKU,
			Name:              body.Name,
			Category:          body.Category,
			CostPrice:         body.CostPrice,
			SellPrice:         body.SellPrice,
			StockQty:          body.StockQty,
			MinStockThreshold: body.MinStockThreshold,
			Unit:              body.Unit,
			CoverPhotoURL:     body.CoverPhotoURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdjustProductStock records a manual stock movement against a product.
func AdjustProductStock(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body adjustStockRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		movType, err := enums.ParseMovementType(body.Type)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid movement type"))
			return
		}

		refType := enums.MovementRefAudit
		if body.RefType != "" {
			parsed, err := enums.ParseMovementRef(body.RefType)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid movement ref"))
				return
			}
			refType = parsed
		}

		staffID := middleware.StaffNameFromContext(r.Context())
		movement, err := st.AdjustStock(r.Context(), chi.URLParam(r, "id"), body.Qty, movType, refType, body.RefID, body.Note, staffID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if movement == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, movement)
	}
}
