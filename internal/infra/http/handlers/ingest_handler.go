package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/infra/http/middleware"
	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/usecase"
)

type IngestHandler struct {
	Ingest      *usecase.IngestUseCase
	rateLimiter *RateLimiter
}

func NewIngestHandler(ingest *usecase.IngestUseCase) *IngestHandler {
	return &IngestHandler{
		Ingest:      ingest,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 extraction calls/min per IP
	}
}

type extractRequest struct {
	Text        string `json:"text,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
	ImageMIME   string `json:"image_mime,omitempty"`
	SourceTag   string `json:"source_tag,omitempty"`
}

type extractResponse struct {
	Customers []entity.Customer `json:"customers"`
}

// HandleExtract (POST /ingest/extract) runs AI extraction over pasted text
// or an uploaded photo and adds the leads to the working set.
func (h *IngestHandler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Code:    "RATE_LIMITED",
			Message: "too many extraction requests, try again later",
		})
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "invalid JSON"})
		return
	}

	input := usecase.ExtractInput{Text: req.Text, SourceTag: req.SourceTag, ImageMIME: req.ImageMIME}
	if req.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "image_base64 is not valid base64"})
			return
		}
		input.ImageData = data
	}

	customers, err := h.Ingest.Extract(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadsIngested("extract", len(customers))
	writeJSON(w, http.StatusCreated, extractResponse{Customers: customers})
}

type sheetRequest struct {
	FileBase64 string `json:"file_base64"`
}

// HandleSheetPreview (POST /ingest/sheet) parses an uploaded workbook and
// returns its table plus a proposed column mapping for the operator to
// confirm or override. Nothing is committed yet.
func (h *IngestHandler) HandleSheetPreview(w http.ResponseWriter, r *http.Request) {
	var req sheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "invalid JSON"})
		return
	}

	file, err := base64.StdEncoding.DecodeString(req.FileBase64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "file_base64 is not valid base64"})
		return
	}

	preview, err := h.Ingest.PreviewSheet(file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, preview)
}

type commitRowsRequest struct {
	Headers   []string          `json:"headers"`
	Rows      [][]string        `json:"rows"`
	Mapping   map[string]string `json:"mapping"`
	SourceTag string            `json:"source_tag,omitempty"`
}

// HandleCommitRows (POST /ingest/rows) normalizes confirmed rows under the
// confirmed mapping.
func (h *IngestHandler) HandleCommitRows(w http.ResponseWriter, r *http.Request) {
	var req commitRowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "invalid JSON"})
		return
	}
	if len(req.Headers) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeInvalidInput, Message: "headers are required"})
		return
	}

	mapping := entity.ColumnMapping{}
	for field, header := range req.Mapping {
		if header == "" || header == "none" {
			continue
		}
		mapping[entity.Field(field)] = header
	}

	customers, added := h.Ingest.CommitRows(req.Headers, req.Rows, mapping, req.SourceTag)

	middleware.RecordLeadsIngested("rows", added)
	writeJSON(w, http.StatusCreated, extractResponse{Customers: customers})
}
