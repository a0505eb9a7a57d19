// Package jwtx is the signed-token codec for the API. Tokens are HS256 JWTs
// carrying the caller's identity plus a kind discriminator, so a tampered,
// expired or mismatched-kind token is rejected without any database state.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kind discriminators embedded in the signed payload.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Default token TTLs. Short-lived access tokens bound the damage of a leaked
// bearer credential; the refresh TTL bounds how long a session can idle.
const (
	DefaultAccessTokenTTL  = 30 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims is the decoded token payload. Subject carries the user's email.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the owning user's record ID.
	UserID string `json:"uid"`

	// Role is the user's role name at issue time.
	Role string `json:"role"`

	// Kind discriminates access tokens from refresh tokens.
	Kind string `json:"kind"`
}

// Codec signs and decodes tokens with a process-wide shared secret. It is
// immutable after construction; build one at startup and inject it.
type Codec struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewCodec builds a Codec. Zero TTLs select the package defaults.
func NewCodec(secret []byte, issuer string, accessTTL, refreshTTL time.Duration) *Codec {
	if accessTTL == 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL == 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}

	return &Codec{
		secret:     secret,
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// AccessTTL reports the configured access token lifetime.
func (c *Codec) AccessTTL() time.Duration { return c.accessTTL }

// RefreshTTL reports the configured refresh token lifetime.
func (c *Codec) RefreshTTL() time.Duration { return c.refreshTTL }

// IssueAccess signs a short-lived access token for the given identity.
func (c *Codec) IssueAccess(userID, email, role string) (string, error) {
	return c.issue(userID, email, role, KindAccess, c.accessTTL)
}

// IssueRefresh signs a refresh token for the given identity. The caller is
// responsible for recording it in the refresh token ledger.
func (c *Codec) IssueRefresh(userID, email, role string) (string, error) {
	return c.issue(userID, email, role, KindRefresh, c.refreshTTL)
}

func (c *Codec) issue(userID, email, role, kind string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Role:   role,
		Kind:   kind,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies the signature and expiry of a token and checks its kind
// discriminator. It is a pure cryptographic check: it answers "is this token
// authentic and unexpired", never whether a refresh token has since been
// superseded or revoked - that is the ledger's job.
func (c *Codec) Decode(token, expectedKind string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalidToken
	}

	if !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Kind != expectedKind {
		return Claims{}, ErrWrongKind
	}
	if claims.Subject == "" {
		return Claims{}, ErrMissingSubject
	}

	return claims, nil
}
