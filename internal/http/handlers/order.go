package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shipping-service/internal/apperr"
	"shipping-service/internal/forms"
)

// OrderHandler serves HTTP endpoints for order resources.
type OrderHandler struct {
	uc      shipmentUsecase
	created counter
}

// NewOrderHandler wires a shipmentUsecase into order HTTP handlers.
func NewOrderHandler(uc shipmentUsecase, created counter) *OrderHandler {
	return &OrderHandler{uc: uc, created: created}
}

// Create handles POST /orders with form-encoded input. Referenced addresses
// and the package must already exist.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	f, err := forms.DecodeOrder(v)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	o, err := h.uc.CreateOrder(r.Context(), newOrderFromForm(f))
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
		writeError(w, r, http.StatusConflict, "package already has an order or a reference is missing")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /orders/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.uc.GetOrder(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toOrderResponse(o))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByNumber handles GET /orders/number/{number}.
func (h *OrderHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		writeError(w, r, http.StatusBadRequest, "invalid order number")
		return
	}

	o, err := h.uc.GetOrderByNumber(r.Context(), number)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toOrderResponse(o))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /orders?customerId=...&limit=...&offset=...
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customerId")
	if customerID == "" {
		writeError(w, r, http.StatusBadRequest, "customerId is required")
		return
	}

	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}

	list, err := h.uc.ListOrders(r.Context(), customerID, limit, offset)
	switch {
	case err == nil:
		out := make([]orderResponse, 0, len(list))
		for i := range list {
			out = append(out, toOrderResponse(&list[i]))
		}
		writeJSON(w, r, http.StatusOK, out)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
