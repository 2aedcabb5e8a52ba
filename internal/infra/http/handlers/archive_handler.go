package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/http/middleware"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/store"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/usecase"
)

type ArchiveHandler struct {
	Store   *store.Store
	Archive *usecase.ArchiveUseCase
}

func NewArchiveHandler(s *store.Store, archive *usecase.ArchiveUseCase) *ArchiveHandler {
	return &ArchiveHandler{Store: s, Archive: archive}
}

// HandleArchive (POST /customers/{id}/archive) moves a drafted lead into
// the archive. A missing customer or draft makes it a no-op rather than an
// error; the response says which happened.
func (h *ArchiveHandler) HandleArchive(w http.ResponseWriter, r *http.Request) {
	archived := h.Archive.Archive(r.Context(), chi.URLParam(r, "id"))
	if archived {
		middleware.RecordArchive()
	}
	writeJSON(w, http.StatusOK, map[string]bool{"archived": archived})
}

// HandleList (GET /archive) returns the completed set oldest-first.
func (h *ArchiveHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"entries": h.Store.ArchiveEntries()})
}

// HandleRemove (DELETE /archive/{id}) deletes an entry permanently.
func (h *ArchiveHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	if !h.Archive.Remove(chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: usecase.CodeCustomerNotFound, Message: "archive entry not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleExportCSV (GET /archive/export.csv) streams the archive as CSV.
func (h *ArchiveHandler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	out := usecase.ExportCSV(h.Store.ArchiveEntries())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="archived-leads.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}
