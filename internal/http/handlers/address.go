package handlers

import (
	"errors"
	"net/http"

	"shipping-service/internal/apperr"
	"shipping-service/internal/forms"
)

// AddressHandler serves HTTP endpoints for address resources.
type AddressHandler struct{ uc shipmentUsecase }

// NewAddressHandler wires a shipmentUsecase into address HTTP handlers.
func NewAddressHandler(uc shipmentUsecase) *AddressHandler { return &AddressHandler{uc: uc} }

// Create handles POST /addresses with form-encoded input.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	f, err := forms.DecodeAddress(v)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	id, err := h.uc.CreateAddress(r.Context(), addressFromForm(f))
	switch {
	case err == nil:
		w.Header().Set("Location", "/addresses/"+id)
		writeJSON(w, r, http.StatusCreated, map[string]string{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /addresses/{id}.
func (h *AddressHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	a, err := h.uc.GetAddress(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toAddressResponse(a))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
