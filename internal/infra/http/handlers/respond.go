package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/usecase"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps usecase errors onto HTTP statuses: expected domain
// outcomes become 4xx, infrastructure failures 5xx.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case usecase.CodeExtractionEmpty:
			status = http.StatusUnprocessableEntity
		case usecase.CodeCustomerNotFound, usecase.CodeDraftNotFound:
			status = http.StatusNotFound
		}
		writeJSON(w, status, errorResponse{Code: domainErr.Code, Message: domainErr.Message})
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Code: techErr.Code, Message: techErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "INTERNAL", Message: err.Error()})
}
