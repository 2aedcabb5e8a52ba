package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/http/middleware"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/store"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/usecase"
)

type DraftHandler struct {
	Store    *store.Store
	Generate *usecase.GenerateUseCase
}

func NewDraftHandler(s *store.Store, generate *usecase.GenerateUseCase) *DraftHandler {
	return &DraftHandler{Store: s, Generate: generate}
}

type generateRequest struct {
	IDs      []string `json:"ids,omitempty"`
	Language string   `json:"language"`
}

func parseLanguage(s string) entity.Language {
	if entity.Language(s) == entity.LanguageTurkish {
		return entity.LanguageTurkish
	}
	return entity.LanguageEnglish
}

// HandleGenerate (POST /drafts/generate) drafts messages in bounded
// batches for the given ids, or for every lead without a draft.
func (h *DraftHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "invalid JSON"})
		return
	}

	lang := parseLanguage(req.Language)
	report := h.Generate.GenerateBatch(r.Context(), req.IDs, lang)

	middleware.RecordDraftGeneration(string(lang), "generated", report.Generated)
	middleware.RecordDraftGeneration(string(lang), "fallback", report.Fallbacks)
	middleware.RecordDraftGeneration(string(lang), "dropped", report.Dropped)

	writeJSON(w, http.StatusOK, report)
}

// HandleRegenerate (POST /customers/{id}/draft/regenerate) replaces one
// lead's draft, possibly in the other language.
func (h *DraftHandler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "invalid JSON"})
		return
	}

	msg, err := h.Generate.Regenerate(r.Context(), chi.URLParam(r, "id"), parseLanguage(req.Language))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// HandleGetDraft (GET /customers/{id}/draft) returns the stored draft.
func (h *DraftHandler) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.Store.Customer(id); !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: usecase.CodeCustomerNotFound, Message: "customer not found"})
		return
	}

	msg, ok := h.Store.Draft(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: usecase.CodeDraftNotFound, Message: "no draft generated yet"})
		return
	}

	writeJSON(w, http.StatusOK, msg)
}
