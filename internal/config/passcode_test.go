package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHash(t *testing.T, passcode string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestNewPasscodeConfig_Defaults(t *testing.T) {
	t.Setenv("PASSCODE_HASH", testHash(t, "open-sesame"))
	t.Setenv("BCRYPT_COST", "")

	cfg, err := NewPasscodeConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestNewPasscodeConfig_MissingHash(t *testing.T) {
	t.Setenv("PASSCODE_HASH", "")

	cfg, err := NewPasscodeConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "PASSCODE_HASH is required")
}

func TestNewPasscodeConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("PASSCODE_HASH", testHash(t, "open-sesame"))

	for _, cost := range []string{"9", "15"} {
		t.Setenv("BCRYPT_COST", cost)
		cfg, err := NewPasscodeConfig()
		assert.Error(t, err, "cost %s should be rejected", cost)
		assert.Nil(t, cfg)
	}
}

func TestVerifyPasscode(t *testing.T) {
	cfg := &PasscodeConfig{Hash: testHash(t, "open-sesame"), BcryptCost: 12}

	assert.True(t, cfg.VerifyPasscode("open-sesame"))
	assert.False(t, cfg.VerifyPasscode("wrong-passcode"))
	assert.False(t, cfg.VerifyPasscode(""))
}

func TestHashPasscode_RoundTrip(t *testing.T) {
	cfg := &PasscodeConfig{BcryptCost: 10}

	hash, err := cfg.HashPasscode("new-passcode")
	require.NoError(t, err)

	verifier := &PasscodeConfig{Hash: hash, BcryptCost: 10}
	assert.True(t, verifier.VerifyPasscode("new-passcode"))
}
