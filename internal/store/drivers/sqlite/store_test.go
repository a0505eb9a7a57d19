package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store/drivers/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st *sqlite.Store, id, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           id,
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleViewer,
		IsActive:     true,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestMigrationsAreIdempotent(t *testing.T) {
	st := newTestStore(t)
	// A second run is a no-op, not an error.
	require.NoError(t, st.ApplyMigrations())
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	u := seedUser(t, st, "u1", "a@example.com")

	byID, err := st.Users().GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)
	assert.Equal(t, domain.RoleViewer, byID.Role)
	assert.True(t, byID.IsActive)

	byEmail, err := st.Users().GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = st.Users().GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	empty, err = st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	seedUser(t, st, "u1", "dup@example.com")

	err := st.Users().CreateUser(ctx, domain.User{
		ID:        "u2",
		Email:     "dup@example.com",
		Role:      domain.RoleViewer,
		CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestSetUserActive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	seedUser(t, st, "u1", "a@example.com")

	found, err := st.Users().SetUserActive(ctx, "u1", false)
	require.NoError(t, err)
	assert.True(t, found)

	u, err := st.Users().GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, u.IsActive)

	found, err = st.Users().SetUserActive(ctx, "missing", false)
	require.NoError(t, err)
	assert.False(t, found)
}

func newToken(userID, hash string, expiresAt time.Time) domain.RefreshToken {
	return domain.RefreshToken{
		ID:        hash + "-id",
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: expiresAt,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

func TestRefreshTokenLedger(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	seedUser(t, st, "u1", "a@example.com")
	require.NoError(t, st.RefreshTokens().CreateRefreshToken(ctx, newToken("u1", "h1", now.Add(time.Hour))))

	rec, err := st.RefreshTokens().GetActiveRefreshTokenByHash(ctx, "h1", now)
	require.NoError(t, err)
	assert.Equal(t, "u1", rec.UserID)

	// Expired records are invisible even while still flagged active.
	_, err = st.RefreshTokens().GetActiveRefreshTokenByHash(ctx, "h1", now.Add(2*time.Hour))
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deactivation hides the record and is idempotent.
	found, err := st.RefreshTokens().DeactivateRefreshToken(ctx, "h1")
	require.NoError(t, err)
	assert.True(t, found)

	_, err = st.RefreshTokens().GetActiveRefreshTokenByHash(ctx, "h1", now)
	assert.ErrorIs(t, err, store.ErrNotFound)

	found, err = st.RefreshTokens().DeactivateRefreshToken(ctx, "h1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeactivateUserRefreshTokens(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	seedUser(t, st, "u1", "a@example.com")
	seedUser(t, st, "u2", "b@example.com")

	require.NoError(t, st.RefreshTokens().CreateRefreshToken(ctx, newToken("u1", "h1", now.Add(time.Hour))))
	require.NoError(t, st.RefreshTokens().CreateRefreshToken(ctx, newToken("u1", "h2", now.Add(time.Hour))))
	require.NoError(t, st.RefreshTokens().CreateRefreshToken(ctx, newToken("u2", "h3", now.Add(time.Hour))))

	require.NoError(t, st.RefreshTokens().DeactivateUserRefreshTokens(ctx, "u1"))

	_, err := st.RefreshTokens().GetActiveRefreshTokenByHash(ctx, "h1", now)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.RefreshTokens().GetActiveRefreshTokenByHash(ctx, "h2", now)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Other users' tokens are untouched.
	_, err = st.RefreshTokens().GetActiveRefreshTokenByHash(ctx, "h3", now)
	assert.NoError(t, err)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, domain.User{
			ID:        "u1",
			Email:     "tx@example.com",
			Role:      domain.RoleViewer,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUserByEmail(ctx, "tx@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	seedUser(t, st, "u1", "a@example.com")
	require.NoError(t, st.RefreshTokens().CreateRefreshToken(ctx, newToken("u1", "old", now.Add(time.Hour))))

	// The rotation pattern: blanket deactivate plus insert, atomically.
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.RefreshTokens().DeactivateUserRefreshTokens(ctx, "u1"); err != nil {
			return err
		}
		return tx.RefreshTokens().CreateRefreshToken(ctx, newToken("u1", "new", now.Add(time.Hour)))
	})
	require.NoError(t, err)

	_, err = st.RefreshTokens().GetActiveRefreshTokenByHash(ctx, "old", now)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.RefreshTokens().GetActiveRefreshTokenByHash(ctx, "new", now)
	assert.NoError(t, err)
}

func TestCatalogRepos(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	p := domain.Product{ID: "p1", Name: "Stol", Price: 199, IsActive: true}
	require.NoError(t, st.Products().CreateProduct(ctx, p))

	got, err := st.Products().GetProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	w := domain.Warehouse{ID: "w1", Name: "Nord", City: "Umeå", Capacity: 100}
	require.NoError(t, st.Warehouses().CreateWarehouse(ctx, w))

	gotW, err := st.Warehouses().GetWarehouseByID(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, w, gotW)

	item := domain.InventoryItem{ID: "i1", ProductID: "p1", WarehouseID: "w1", Quantity: 5, MinimumStockLevel: 1}
	require.NoError(t, st.Inventory().CreateInventoryItem(ctx, item))

	// Duplicate (product, warehouse) pair is a conflict.
	dup := item
	dup.ID = "i2"
	assert.ErrorIs(t, st.Inventory().CreateInventoryItem(ctx, dup), store.ErrAlreadyExists)

	found, err := st.Inventory().UpdateInventoryQuantity(ctx, "p1", "w1", 9)
	require.NoError(t, err)
	assert.True(t, found)

	gotI, err := st.Inventory().GetInventoryItem(ctx, "p1", "w1")
	require.NoError(t, err)
	assert.Equal(t, 9, gotI.Quantity)

	found, err = st.Inventory().UpdateInventoryQuantity(ctx, "p1", "missing", 1)
	require.NoError(t, err)
	assert.False(t, found)

	items, err := st.Inventory().ListInventory(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
