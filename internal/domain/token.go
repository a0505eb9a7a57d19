package domain

import "time"

// TokenPair is what the auth endpoints return: the short-lived access token
// and the ledger-tracked refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"` // always "Bearer"
}

// RefreshToken models the stored refresh token record. The token itself is
// stored only as a SHA-256 fingerprint; superseded and logged-out records are
// flipped inactive, expired ones are excluded by query rather than deleted.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	ExpiresAt time.Time
	IsActive  bool
	CreatedAt time.Time
}
