// Package config provides passcode hashing and verification. The dashboard
// is single-operator, so authentication is one bcrypt-hashed passcode
// rather than a user table.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasscodeConfig holds the operator passcode hash and bcrypt settings.
type PasscodeConfig struct {
	Hash       string // bcrypt hash of the operator passcode
	BcryptCost int
}

// NewPasscodeConfig creates a passcode configuration from environment
// variables. It reads PASSCODE_HASH (required) and BCRYPT_COST (default: 12).
func NewPasscodeConfig() (*PasscodeConfig, error) {
	hash := os.Getenv("PASSCODE_HASH")
	if hash == "" {
		return nil, fmt.Errorf("PASSCODE_HASH is required but not set")
	}

	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &PasscodeConfig{
		Hash:       hash,
		BcryptCost: cost,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *PasscodeConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPasscode hashes a passcode using bcrypt. Used by the setup flow to
// produce the PASSCODE_HASH value.
func (c *PasscodeConfig) HashPasscode(passcode string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passcode: %w", err)
	}
	return string(hash), nil
}

// VerifyPasscode checks a passcode against the configured hash.
func (c *PasscodeConfig) VerifyPasscode(passcode string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(c.Hash), []byte(passcode))
	return err == nil
}
