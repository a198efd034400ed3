package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generateToken produces a 6-digit single-use code. The code is short-lived
// and cleared on first use, so six random digits are enough, but each call
// must be unpredictable, hence crypto/rand.
func generateToken() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
