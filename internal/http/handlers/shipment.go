package handlers

import (
	"errors"
	"net/http"

	"shipping-service/internal/apperr"
	"shipping-service/internal/forms"
	"shipping-service/internal/service/shipment"
)

// ShipmentHandler serves the composite endpoint that creates both
// addresses, the package and the order in one request.
type ShipmentHandler struct {
	uc      shipmentUsecase
	created counter
}

// NewShipmentHandler wires a shipmentUsecase into the shipment HTTP handler.
func NewShipmentHandler(uc shipmentUsecase, created counter) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, created: created}
}

// Create handles POST /shipments with form-encoded input.
func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	f, err := forms.DecodeShipment(v)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	o, err := h.uc.CreateShipment(r.Context(), shipment.ShipmentInput{
		Pickup:                *addressFromForm(&f.Pickup),
		Delivery:              *addressFromForm(&f.Delivery),
		Package:               *packageFromForm(&f.Package),
		CustomerID:            f.CustomerID,
		Priority:              priorityFromForm(f.Priority),
		RequestedPickupDate:   f.RequestedPickupDate,
		EstimatedDeliveryDate: f.EstimatedDeliveryDate,
		EstimatedPrice:        *f.EstimatedPrice,
	})
	switch {
	case err == nil:
		if h.created != nil {
			h.created.Inc()
		}
		w.Header().Set("Location", "/orders/"+o.ID)
		writeJSON(w, r, http.StatusCreated, toOrderResponse(o))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "conflicting references")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
