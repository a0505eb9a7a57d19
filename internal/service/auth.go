package service

import (
	"context"
	"errors"
	"time"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/cryptox"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/idx"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/jwtx"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/metricsx"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/slogx"
)

var (
	// ErrInvalidCredentials deliberately covers both "no such user" and
	// "wrong password" so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrInactiveAccount is returned when credentials or tokens are valid
	// but the account has been deactivated.
	ErrInactiveAccount = errors.New("account is inactive")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidRefresh covers malformed, expired, superseded and revoked
	// refresh tokens; the distinctions are not exposed to the caller.
	ErrInvalidRefresh = errors.New("invalid or expired refresh token")

	// ErrInvalidAccess covers missing, malformed and expired access tokens
	// as well as tokens whose subject no longer resolves to a user.
	ErrInvalidAccess = errors.New("invalid or expired access token")
)

// WeakPasswordError reports a registration password that fails the strength
// policy. Reason is safe to return to the caller.
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string { return e.Reason }

// AuthService orchestrates registration, login, refresh and logout. All
// ledger mutations run inside store transactions; the service holds no locks
// and no state beyond its injected dependencies.
type AuthService struct {
	Store store.Store
	Codec *jwtx.Codec

	// BcryptCost tunes password hashing; zero selects cryptox.DefaultCost.
	BcryptCost int
}

// Register creates a new user. The password strength check runs before any
// persistence write; a uniqueness violation under race is translated to
// ErrEmailTaken rather than surfaced raw.
func (s *AuthService) Register(
	ctx context.Context,
	email, password string,
	role domain.Role,
) (domain.User, error) {
	if ok, reason := cryptox.ValidatePasswordStrength(password); !ok {
		return domain.User{}, &WeakPasswordError{Reason: reason}
	}

	hash, err := cryptox.HashPassword(password, s.BcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", u.ID, "role", u.Role.String())
	return u, nil
}

// Login verifies credentials and issues a token pair. The new refresh token
// is recorded in the ledger, superseding any previously active one.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metricsx.LoginsTotal.WithLabelValues(metricsx.ResultDenied).Inc()
			return nil, ErrInvalidCredentials
		}
		metricsx.LoginsTotal.WithLabelValues(metricsx.ResultError).Inc()
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		metricsx.LoginsTotal.WithLabelValues(metricsx.ResultDenied).Inc()
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		metricsx.LoginsTotal.WithLabelValues(metricsx.ResultInactive).Inc()
		return nil, ErrInactiveAccount
	}

	pair, err := s.issueAndStore(ctx, u, "")
	if err != nil {
		metricsx.LoginsTotal.WithLabelValues(metricsx.ResultError).Inc()
		return nil, err
	}

	metricsx.LoginsTotal.WithLabelValues(metricsx.ResultOK).Inc()
	slogx.FromContext(ctx).Info("user logged in", "user_id", u.ID)
	return pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The presented
// token must pass two independent checks: the codec answers "authentic and
// unexpired", the ledger answers "not superseded or revoked".
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if _, err := s.Codec.Decode(refreshToken, jwtx.KindRefresh); err != nil {
		return nil, ErrInvalidRefresh
	}

	hash := cryptox.FingerprintToken(refreshToken)
	rec, err := s.Store.RefreshTokens().GetActiveRefreshTokenByHash(ctx, hash, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	u, err := s.Store.Users().GetUserByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrInactiveAccount
	}

	pair, err := s.issueAndStore(ctx, u, hash)
	if err != nil {
		return nil, err
	}

	slogx.FromContext(ctx).Info("refresh token rotated", "user_id", u.ID)
	return pair, nil
}

// Logout revokes the presented refresh token in the ledger. No decode is
// performed first; an unknown or already-inactive token reports ErrInvalidRefresh.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	hash := cryptox.FingerprintToken(refreshToken)

	found, err := s.Store.RefreshTokens().DeactivateRefreshToken(ctx, hash)
	if err != nil {
		return err
	}
	if !found {
		return ErrInvalidRefresh
	}

	metricsx.RefreshTokensRevoked.Inc()
	return nil
}

// ResolveAccessToken resolves a bearer access token to the user it belongs
// to: decode as access kind, load by subject email, reject inactive accounts.
func (s *AuthService) ResolveAccessToken(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.Codec.Decode(token, jwtx.KindAccess)
	if err != nil {
		return domain.User{}, ErrInvalidAccess
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidAccess
		}
		return domain.User{}, err
	}

	if !u.IsActive {
		return domain.User{}, ErrInactiveAccount
	}

	return u, nil
}

// issueAndStore signs a new pair and records the refresh token. Within one
// transaction every previously active record for the user is deactivated
// before the new one is inserted, so concurrent refreshes serialize at the
// store and exactly one token per user survives as active. oldHash, when
// set, is additionally revoked by fingerprint; the blanket deactivation
// already covers it, so the explicit call can never double-revoke.
func (s *AuthService) issueAndStore(
	ctx context.Context,
	u domain.User,
	oldHash string,
) (*domain.TokenPair, error) {
	access, err := s.Codec.IssueAccess(u.ID, u.Email, u.Role.String())
	if err != nil {
		return nil, err
	}

	refresh, err := s.Codec.IssueRefresh(u.ID, u.Email, u.Role.String())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: cryptox.FingerprintToken(refresh),
		ExpiresAt: now.Add(s.Codec.RefreshTTL()),
		IsActive:  true,
		CreatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if oldHash != "" {
			if _, err := tx.RefreshTokens().DeactivateRefreshToken(ctx, oldHash); err != nil {
				return err
			}
		}
		if err := tx.RefreshTokens().DeactivateUserRefreshTokens(ctx, u.ID); err != nil {
			return err
		}
		return tx.RefreshTokens().CreateRefreshToken(ctx, rec)
	})
	if err != nil {
		return nil, err
	}

	metricsx.RefreshTokensIssued.Inc()

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}, nil
}
