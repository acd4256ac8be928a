package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body of every failed API request.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"traceId,omitempty"`
}

// WriteJSON serializes data to JSON and writes it with the given status code.
// When marshaling fails it answers 500 and returns the wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorResponse]. The trace ID is taken from the
// request context when present.
func WriteError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	resp := ErrorResponse{Error: message}
	if r != nil {
		resp.TraceID, _ = GetTraceIDFromContext(r.Context())
	}
	_, _ = WriteJSON(w, resp, statusCode)
}
