package dto

// UpdatePasswordReq represents the request body for the /api/auth/update-password endpoint.
type UpdatePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
}

// UpdatePasswordMessages maps validation failures to the user-facing messages.
var UpdatePasswordMessages = map[string]string{
	"CurrentPassword":   "El password actual no puede ir vacio",
	"Password.required": "El password no puede ir vacio",
	"Password.min":      "El password es muy corto, mínimo 8 caracteres",
}

// CheckPasswordReq represents the request body for the /api/auth/check-password endpoint.
type CheckPasswordReq struct {
	Password string `json:"password" binding:"required"`
}

// CheckPasswordMessages maps validation failures to the user-facing messages.
var CheckPasswordMessages = map[string]string{
	"Password": "El password no puede ir vacio",
}

// UpdateUserReq represents the request body for the PUT /api/auth/user endpoint.
type UpdateUserReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserMessages maps validation failures to the user-facing messages.
var UpdateUserMessages = map[string]string{
	"Name":           "El nombre no puede ir vacio",
	"Email.required": "El email es obligatorio",
	"Email.email":    "E-mail no válido",
}
