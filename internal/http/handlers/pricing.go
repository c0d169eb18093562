package handlers

import (
	"errors"
	"net/http"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/forms"
	"shipping-service/internal/service/pricing"
)

// PricingHandler serves HTTP endpoints for price quotes.
type PricingHandler struct{ uc pricingUsecase }

// NewPricingHandler wires a pricingUsecase into pricing HTTP handlers.
func NewPricingHandler(uc pricingUsecase) *PricingHandler { return &PricingHandler{uc: uc} }

// Estimate handles POST /pricing/estimate with form-encoded input.
func (h *PricingHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	f, err := forms.DecodeEstimate(v)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	est, err := h.uc.EstimatePrice(r.Context(), pricing.EstimateInput{
		PackageType:       domain.PackageType(f.PackageType),
		WeightKg:          *f.WeightKg,
		Priority:          domain.PriorityLevel(f.Priority),
		PickupAddressID:   f.PickupAddressID,
		DeliveryAddressID: f.DeliveryAddressID,
	})
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, estimateResponse{
			Price:       est.Price,
			DistanceKm:  est.DistanceKm,
			PackageType: string(est.PackageType),
			Priority:    string(est.Priority),
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "address or pricing rule not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
