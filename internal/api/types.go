// Package api defines the shared request/response shapes of the HTTP API.
package api

// ErrorResponse is the body returned for every business-rule failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldIssue describes a single per-field validation failure.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse is the body returned when input validation fails,
// before any business logic runs.
type ValidationResponse struct {
	Errors []FieldIssue `json:"errors"`
}

// UserResponse is the authenticated identity exposed by GET /api/auth/user.
// The password hash is never part of this shape.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
