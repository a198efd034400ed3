// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cashtrackr_backend/internal/api"
	"cashtrackr_backend/internal/feature/auth/domain/entity"
	"cashtrackr_backend/internal/feature/auth/transport/http/dto"
	authmw "cashtrackr_backend/internal/feature/auth/transport/middleware"
	"cashtrackr_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention, interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	ConfirmAccount(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ValidateResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	CheckPassword(ctx context.Context, userID uint, password string) error
	UpdateProfile(ctx context.Context, userID uint, name, email string) error
}

// AuthHandler handles the HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// handleError converts an unexpected failure into a generic 500. The detail
// stays in the server log and never reaches the client.
func handleError(c *gin.Context, err error) {
	slog.Error("unexpected error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Hubo un error"})
}

// CreateAccount handles POST /api/auth/create-account.
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.CreateAccountMessages)})
		return
	}

	// Register returns the created user so test harnesses can read the
	// confirmation token; it is never serialized here.
	if _, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Un usuario con ese email ya esta registrado"})
			return
		}
		handleError(c, err)
		return
	}

	slog.Info("account created", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, "Cuenta Creada Correctamente")
}

// ConfirmAccount handles POST /api/auth/confirm-account.
func (h *AuthHandler) ConfirmAccount(c *gin.Context) {
	var req dto.ConfirmAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.ConfirmAccountMessages)})
		return
	}

	if err := h.auth.ConfirmAccount(c.Request.Context(), req.Token); err != nil {
		if errors.Is(err, usecase.ErrTokenNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Token no válido"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, "Cuenta confirmada correctamente")
}

// Login handles POST /api/auth/login. On success the response body is the
// signed session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.LoginMessages)})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Usuario no encontrado"})
		case errors.Is(err, usecase.ErrAccountNotConfirmed):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "La Cuenta no ha sido confirmada"})
		case errors.Is(err, usecase.ErrIncorrectPassword):
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Password Incorrecto"})
		default:
			handleError(c, err)
		}
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, token)
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.ForgotPasswordMessages)})
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Usuario no encontrado"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, "Revisa tu email para instrucciones")
}

// ValidateToken handles POST /api/auth/validate-token. It is a pure read used
// by the client to gate the new-password form.
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req dto.ValidateTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.ValidateTokenMessages)})
		return
	}

	if err := h.auth.ValidateResetToken(c.Request.Context(), req.Token); err != nil {
		if errors.Is(err, usecase.ErrTokenNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Token no válido"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, "Token válido, asigna un nuevo password")
}

// ResetPassword handles POST /api/auth/reset-password/:token.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")
	if !isTokenFormat(token) {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{
			Errors: []api.FieldIssue{{Field: "token", Message: "Token no válido"}},
		})
		return
	}

	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.ResetPasswordMessages)})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), token, req.Password); err != nil {
		if errors.Is(err, usecase.ErrTokenNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Token no válido"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, "El password se modificó correctamente")
}

// User handles GET /api/auth/user, returning the authenticated identity.
func (h *AuthHandler) User(c *gin.Context) {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No Autorizado"})
		return
	}
	c.JSON(http.StatusOK, api.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// UpdateUser handles PUT /api/auth/user.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No Autorizado"})
		return
	}

	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.UpdateUserMessages)})
		return
	}

	if err := h.auth.UpdateProfile(c.Request.Context(), user.ID, req.Name, req.Email); err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Ese email ya está registrado por otro usuario"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, "Perfil actualizado correctamente")
}

// UpdatePassword handles POST /api/auth/update-password.
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No Autorizado"})
		return
	}

	var req dto.UpdatePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.UpdatePasswordMessages)})
		return
	}

	if err := h.auth.UpdatePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.Password); err != nil {
		if errors.Is(err, usecase.ErrIncorrectPassword) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "El password actual es incorrecto"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, "El password se modificó correctamente")
}

// CheckPassword handles POST /api/auth/check-password. It verifies the
// password without mutation, gating destructive confirmations in the client.
func (h *AuthHandler) CheckPassword(c *gin.Context) {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "No Autorizado"})
		return
	}

	var req dto.CheckPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ValidationResponse{Errors: api.Issues(err, dto.CheckPasswordMessages)})
		return
	}

	if err := h.auth.CheckPassword(c.Request.Context(), user.ID, req.Password); err != nil {
		if errors.Is(err, usecase.ErrIncorrectPassword) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "El password actual es incorrecto"})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, "Password Correcto")
}

// isTokenFormat reports whether s looks like a 6-digit single-use code.
func isTokenFormat(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
