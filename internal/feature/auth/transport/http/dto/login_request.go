package dto

// LoginReq represents the request body for the /api/auth/login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginMessages maps validation failures to the user-facing messages.
var LoginMessages = map[string]string{
	"Email.required": "El email es obligatorio",
	"Email.email":    "E-mail no válido",
	"Password":       "El password no puede ir vacio",
}
