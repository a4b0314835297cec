package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/abirabbas/portfolio-api/internal/domain"
)

// SuccessResponse wraps successful portfolio-data responses
type SuccessResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the full issue list for a rejected body
type ValidationErrorResponse struct {
	Error  string                   `json:"error"`
	Issues []domain.ValidationIssue `json:"issues"`
}

// JSON writes a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Success writes a successful JSON response with a timestamp envelope
func Success(w http.ResponseWriter, status int, data interface{}) {
	JSON(w, status, SuccessResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Error writes an error JSON response
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// ValidationError writes a 400 response carrying every schema issue
func ValidationError(w http.ResponseWriter, issues []domain.ValidationIssue) {
	JSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:  "Invalid request body",
		Issues: issues,
	})
}

// DomainErrorToHTTP maps domain errors to HTTP status codes
func DomainErrorToHTTP(err error) int {
	if err == nil {
		return http.StatusOK
	}

	domainErr, ok := err.(*domain.DomainError)
	if !ok {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
