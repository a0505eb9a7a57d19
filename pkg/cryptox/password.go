package cryptox

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used when no cost is supplied.
	// 12 keeps hashing around the commonly recommended 100ms+ on current
	// hardware; tune via config rather than editing this.
	DefaultCost = 12

	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8
)

// HashPassword hashes a plaintext password with bcrypt. A cost of zero or
// less selects DefaultCost. The salt is generated and embedded by bcrypt.
func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt hash.
// Comparison is constant-time inside bcrypt itself.
func VerifyPassword(password, encodedHash string) error {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
}

// ValidatePasswordStrength checks the registration password policy:
// at least MinPasswordLength characters with a lowercase letter, an
// uppercase letter and a digit. The returned reason is safe to surface
// to the caller.
func ValidatePasswordStrength(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, "password must be at least 8 characters long"
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	switch {
	case !hasLower:
		return false, "password must contain at least one lowercase letter"
	case !hasUpper:
		return false, "password must contain at least one uppercase letter"
	case !hasDigit:
		return false, "password must contain at least one digit"
	}

	return true, "password is valid"
}
