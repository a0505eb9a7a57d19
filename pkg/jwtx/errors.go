package jwtx

import "errors"

var (
	// ErrInvalidToken covers malformed tokens and signature failures.
	ErrInvalidToken = errors.New("jwtx: invalid token")

	// ErrExpired is returned when the token's exp claim has passed.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrWrongKind is returned when the token kind discriminator does not
	// match what the caller expected (e.g. an access token presented where
	// a refresh token is required).
	ErrWrongKind = errors.New("jwtx: unexpected token kind")

	// ErrMissingSubject is returned when the subject claim is absent.
	ErrMissingSubject = errors.New("jwtx: missing subject claim")
)
