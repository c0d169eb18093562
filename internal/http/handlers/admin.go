package handlers

import (
	"net/http"
)

// AdminHandler serves maintenance endpoints: schema bootstrap, fixture
// seeding and database reset. These routes sit behind admin auth.
type AdminHandler struct{ uc maintenanceUsecase }

// NewAdminHandler wires a maintenanceUsecase into admin HTTP handlers.
func NewAdminHandler(uc maintenanceUsecase) *AdminHandler { return &AdminHandler{uc: uc} }

// Bootstrap handles POST /admin/schema.
func (h *AdminHandler) Bootstrap(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Bootstrap(r.Context()); err != nil {
		writeError(w, r, http.StatusInternalServerError, "schema bootstrap failed")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Seed handles POST /admin/seed.
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Seed(r.Context()); err != nil {
		writeError(w, r, http.StatusInternalServerError, "seeding failed")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Reset handles POST /admin/reset.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Reset(r.Context()); err != nil {
		writeError(w, r, http.StatusInternalServerError, "reset failed")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
