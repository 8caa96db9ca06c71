// Package httpx provides small HTTP helpers shared by the handler packages:
// JSON response writing, the uniform error body, and bearer token extraction.
package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error" example:"Server not found"`
	// Violations lists the individual constraint failures for validation
	// errors (422). Omitted otherwise.
	Violations []string `json:"violations,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the uniform error body.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// WriteViolations writes a 422 response listing the violated constraints.
func WriteViolations(w http.ResponseWriter, violations []string) {
	WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:      "Validation failed",
		Violations: violations,
	})
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns "" when the header is missing or not in bearer form.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}
	return token
}
