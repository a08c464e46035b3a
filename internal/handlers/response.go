package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/validation"
)

// dataResponse is the envelope for every successful API payload
type dataResponse struct {
	Data interface{} `json:"data"`
}

// errorResponse is the envelope for failed requests
type errorResponse struct {
	Error  string             `json:"error"`
	Issues []validation.Issue `json:"issues,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, errorResponse{Error: message}, logger)
}

// writeValidationError writes a 400 listing every schema violation
func writeValidationError(w http.ResponseWriter, err *validation.ValidationError, logger *slog.Logger) {
	WriteJSON(w, http.StatusBadRequest, errorResponse{
		Error:  "Invalid request body",
		Issues: err.Issues,
	}, logger)
}
