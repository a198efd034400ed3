package dto

// ForgotPasswordReq represents the request body for the /api/auth/forgot-password endpoint.
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordMessages maps validation failures to the user-facing messages.
var ForgotPasswordMessages = map[string]string{
	"Email.required": "El email es obligatorio",
	"Email.email":    "E-mail no válido",
}
