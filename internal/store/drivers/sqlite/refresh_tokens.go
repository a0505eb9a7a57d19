package sqlite

import (
	"context"
	"time"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
)

type refreshTokensRepo struct {
	db dbtx
}

func (r *refreshTokensRepo) CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (id, token_hash, user_id, expires_at, is_active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.TokenHash, t.UserID, t.ExpiresAt, t.IsActive, t.CreatedAt)
	return mapConflict(err)
}

func (r *refreshTokensRepo) GetActiveRefreshTokenByHash(
	ctx context.Context,
	hash string,
	now time.Time,
) (domain.RefreshToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, token_hash, user_id, expires_at, is_active, created_at
		 FROM refresh_tokens
		 WHERE token_hash = ? AND is_active = TRUE AND expires_at > ?`,
		hash, now)

	var t domain.RefreshToken
	err := row.Scan(&t.ID, &t.TokenHash, &t.UserID, &t.ExpiresAt, &t.IsActive, &t.CreatedAt)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *refreshTokensRepo) DeactivateUserRefreshTokens(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE refresh_tokens SET is_active = FALSE WHERE user_id = ? AND is_active = TRUE`,
		userID)
	return err
}

func (r *refreshTokensRepo) DeactivateRefreshToken(ctx context.Context, hash string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE refresh_tokens SET is_active = FALSE WHERE token_hash = ? AND is_active = TRUE`,
		hash)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
