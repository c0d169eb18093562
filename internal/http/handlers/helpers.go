package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"shipping-service/internal/apperr"
	"shipping-service/internal/forms"
)

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Printf("req_id=%s json encode error: %v", reqID(r.Context()), err)
	}
}

type errResponse struct {
	Error string `json:"error"`
}

type fieldErrResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	log.Printf("req_id=%s http_error status=%d msg=%q", reqID(r.Context()), status, msg)
	writeJSON(w, r, status, errResponse{Error: msg})
}

// writeValidationError renders the per-field error map from form validation.
func writeValidationError(w http.ResponseWriter, r *http.Request, verr *apperr.ValidationError) {
	writeJSON(w, r, http.StatusBadRequest, fieldErrResponse{
		Error:  "validation failed",
		Fields: verr.Fields,
	})
}

const (
	bodyLimit = 1 << 20
)

// formValues reads form-encoded input from the body and query into a flat
// key to value map. Repeated keys keep the first value.
func formValues(w http.ResponseWriter, r *http.Request) (forms.Values, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed form input")
		return nil, false
	}

	v := make(forms.Values, len(r.Form))
	for key, vals := range r.Form {
		if len(vals) > 0 {
			v[key] = vals[0]
		}
	}
	return v, true
}

func uuidFromURL(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if _, err := uuid.Parse(raw); err != nil {
		return "", errors.New("invalid id")
	}
	return raw, nil
}

// pagination parses optional limit and offset query parameters.
func pagination(w http.ResponseWriter, r *http.Request) (limit, offset *int, ok bool) {
	q := r.URL.Query()
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(w, r, http.StatusBadRequest, "invalid limit")
			return nil, nil, false
		}
		limit = &v
	}
	if s := q.Get("offset"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			writeError(w, r, http.StatusBadRequest, "invalid offset")
			return nil, nil, false
		}
		offset = &v
	}
	return limit, offset, true
}
