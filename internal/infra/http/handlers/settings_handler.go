package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/store"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/usecase"
)

type SettingsHandler struct {
	Store *store.Store
}

func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{Store: s}
}

// HandleGet (GET /settings) returns the current generation context.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.GenerationContext())
}

// HandlePut (PUT /settings) replaces the generation context. Takes effect
// for subsequent generations only; stored drafts are untouched.
func (h *SettingsHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	var ctx entity.GenerationContext
	if err := json.NewDecoder(r.Body).Decode(&ctx); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "invalid JSON"})
		return
	}

	h.Store.SetGenerationContext(ctx)
	writeJSON(w, http.StatusOK, ctx)
}
