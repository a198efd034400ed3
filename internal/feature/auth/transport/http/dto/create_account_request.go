// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// CreateAccountReq represents the request body for the /api/auth/create-account endpoint.
// It uses Gin's binding tags for validation (required, email format, password length).
type CreateAccountReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateAccountMessages maps validation failures to the user-facing messages.
var CreateAccountMessages = map[string]string{
	"Name":              "El nombre no puede ir vacio",
	"Email.required":    "El email es obligatorio",
	"Email.email":       "E-mail no válido",
	"Password.required": "El password no puede ir vacio",
	"Password.min":      "El password es muy corto, mínimo 8 caracteres",
}
