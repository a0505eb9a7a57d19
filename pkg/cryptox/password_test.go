package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Sup3rSecret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "Sup3rSecret", hash)

	require.NoError(t, VerifyPassword("Sup3rSecret", hash))
	require.Error(t, VerifyPassword("WrongPass1", hash))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("Sup3rSecret", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("Sup3rSecret", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
}

func TestValidatePasswordStrength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		ok       bool
		reason   string
	}{
		{"valid", "Passw0rd", true, "password is valid"},
		{"too short", "Pw1", false, "password must be at least 8 characters long"},
		{"no lowercase", "PASSWORD1", false, "password must contain at least one lowercase letter"},
		{"no uppercase", "password1", false, "password must contain at least one uppercase letter"},
		{"no digit", "Passwords", false, "password must contain at least one digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ValidatePasswordStrength(tt.password)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.reason, reason)
		})
	}
}
