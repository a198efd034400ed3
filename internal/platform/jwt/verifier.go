// Package jwtmw provides signing and verification of session tokens.
package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
// Bad signatures, expired tokens and malformed strings all collapse into
// this single error so callers cannot distinguish why a token was rejected.
var ErrInvalidToken = errors.New("invalid token")

// Verifier defines the interface for session token verification.
type Verifier interface {
	// VerifyToken checks signature and expiry and returns the encoded user ID.
	VerifyToken(token string) (uint, error)
}

// verifier implements the Verifier interface.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new JWT verifier with the provided secret.
func NewVerifier(secret string) *verifier {
	return &verifier{secret: []byte(secret)}
}

// VerifyToken parses the token, checks the HMAC signature and expiry, and
// extracts the user ID from the sub claim.
func (v *verifier) VerifyToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok || sub <= 0 {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
