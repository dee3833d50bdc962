// Package apierror provides the error envelope shared by every endpoint.
// The shape ({"success": false, "message": "..."}) is what the React frontend
// already parses, so it must not change.
package apierror

// APIError is the canonical error body for all 4xx/5xx responses.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Success: false, Message: msg}
}

// Validation wraps field-level validation failures.
type ValidationError struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Success: false, Message: "Datos incompletos", Fields: fields}
}
