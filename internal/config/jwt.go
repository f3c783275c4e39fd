package config

import (
	"fmt"
	"os"
	"strconv"
)

// Session settings for the single-operator login. The secret signs the JWT
// handed out by /auth/login; the lifetime bounds how long a dashboard
// session stays valid before the operator re-enters the passcode.
const (
	defaultSessionHours = 24
	minJWTSecretLength  = 32 // HS256 secret, matches the hash output size
)

// JWTConfig holds the signing secret and session lifetime for operator
// tokens.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT_SECRET (required, at least 32 bytes) and
// JWT_EXPIRATION_HOURS (default 24) from the environment.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("config error: JWT_SECRET is required but not set")
	}
	if len(secret) < minJWTSecretLength {
		return nil, fmt.Errorf("config error: JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}

	hours := defaultSessionHours
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("config error: JWT_EXPIRATION_HOURS must be a positive hour count, got %q", raw)
		}
		hours = parsed
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}
