package dto

// ConfirmAccountReq represents the request body for the /api/auth/confirm-account endpoint.
type ConfirmAccountReq struct {
	Token string `json:"token" binding:"required,len=6,numeric"`
}

// ConfirmAccountMessages maps validation failures to the user-facing messages.
var ConfirmAccountMessages = map[string]string{
	"Token.required": "El Token no puede ir vacio",
	"Token":          "Token no válido",
}
