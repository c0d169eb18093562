package handlers

import (
	"errors"
	"net/http"

	"shipping-service/internal/apperr"
	"shipping-service/internal/domain"
	"shipping-service/internal/forms"
)

// UserHandler serves HTTP endpoints for accounts and authentication.
type UserHandler struct{ uc userUsecase }

// NewUserHandler wires a userUsecase into user HTTP handlers.
func NewUserHandler(uc userUsecase) *UserHandler { return &UserHandler{uc: uc} }

// Register handles POST /auth/register with form-encoded input.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	f, err := forms.DecodeRegister(v)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	u, err := h.uc.Register(r.Context(), f.Email, f.Password, domain.UserRole(f.Role))
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusCreated, toUserResponse(u))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, "email already registered")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Login handles POST /auth/login with form-encoded input.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	v, ok := formValues(w, r)
	if !ok {
		return
	}

	f, err := forms.DecodeLogin(v)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr)
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	token, u, err := h.uc.Login(r.Context(), f.Email, f.Password)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, loginResponse{Token: token, User: toUserResponse(u)})
	case errors.Is(err, apperr.ErrInvalid), errors.Is(err, apperr.ErrNotFound):
		// do not reveal whether the account exists
		writeError(w, r, http.StatusUnauthorized, "invalid credentials")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
