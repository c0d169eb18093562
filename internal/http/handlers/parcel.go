package handlers

import (
	"errors"
	"net/http"

	"shipping-service/internal/apperr"
	"shipping-service/internal/forms"
)

// PackageHandler serves HTTP endpoints for package resources.
type PackageHandler struct{ uc shipmentUsecase }

// NewPackageHandler wires a shipmentUsecase into package HTTP handlers.
func NewPackageHandler(uc shipmentUsecase) *PackageHandler { return &PackageHandler{uc: uc} }

// Create handles POST /packages with form-encoded input.
func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	f, err := forms.DecodePackage(v)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	id, err := h.uc.CreatePackage(r.Context(), packageFromForm(f))
	switch {
	case err == nil:
		w.Header().Set("Location", "/packages/"+id)
		writeJSON(w, r, http.StatusCreated, map[string]string{"id": id})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /packages/{id}.
func (h *PackageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.uc.GetPackage(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toPackageResponse(p))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
