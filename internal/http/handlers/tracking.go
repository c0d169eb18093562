package handlers

import (
	"errors"
	"net/http"

	"shipping-service/internal/apperr"
	"shipping-service/internal/forms"
)

// TrackingHandler serves HTTP endpoints for order tracking.
type TrackingHandler struct {
	uc       trackingUsecase
	recorded counter
}

// NewTrackingHandler wires a trackingUsecase into tracking HTTP handlers.
func NewTrackingHandler(uc trackingUsecase, recorded counter) *TrackingHandler {
	return &TrackingHandler{uc: uc, recorded: recorded}
}

// Create handles POST /tracking with form-encoded input.
func (h *TrackingHandler) Create(w http.ResponseWriter, r *http.Request) {
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	f, err := forms.DecodeTracking(v)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	e := trackingFromForm(f)

	err = h.uc.Record(r.Context(), e)
	switch {
	case err == nil:
		if h.recorded != nil {
			h.recorded.Inc()
		}
		writeJSON(w, r, http.StatusCreated, toTrackingResponse(e))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "order not found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "status transition not allowed")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// History handles GET /orders/{id}/tracking.
func (h *TrackingHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	events, err := h.uc.History(r.Context(), id)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]trackingResponse, 0, len(events))
	for i := range events {
		out = append(out, toTrackingResponse(&events[i]))
	}
	writeJSON(w, r, http.StatusOK, out)
}
