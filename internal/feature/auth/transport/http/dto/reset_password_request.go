package dto

// ValidateTokenReq represents the request body for the /api/auth/validate-token endpoint.
type ValidateTokenReq struct {
	Token string `json:"token" binding:"required,len=6,numeric"`
}

// ValidateTokenMessages maps validation failures to the user-facing messages.
var ValidateTokenMessages = map[string]string{
	"Token.required": "El Token no puede ir vacio",
	"Token":          "Token no válido",
}

// ResetPasswordReq represents the request body for the /api/auth/reset-password/:token endpoint.
type ResetPasswordReq struct {
	Password string `json:"password" binding:"required,min=8"`
}

// ResetPasswordMessages maps validation failures to the user-facing messages.
var ResetPasswordMessages = map[string]string{
	"Password.required": "El password no puede ir vacio",
	"Password.min":      "El password es muy corto, mínimo 8 caracteres",
}
