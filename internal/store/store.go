package store

import (
	"context"
	"errors"
	"time"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable; downstream components declare the capability they need rather
// than importing a shared session.
type Store interface {
	Users() Users
	RefreshTokens() RefreshTokens
	Products() Products
	Warehouses() Warehouses
	Inventory() Inventory

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle multi-step mutations that must be atomic
	// (e.g. refresh token rotation).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is the lookup used on login and per-request identity
	// resolution. The email key is case-sensitive.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists on an email uniqueness violation.
	CreateUser(ctx context.Context, u domain.User) error

	// SetUserActive flips the account's active flag and reports whether a
	// matching user existed.
	SetUserActive(ctx context.Context, id string, active bool) (bool, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

// RefreshTokens is the refresh token ledger. At most one record per user is
// active at any time; CreateRefreshToken alone does not enforce this, so
// issuance must pair DeactivateUserRefreshTokens with it in one transaction.
type RefreshTokens interface {
	// CreateRefreshToken stores a new refresh token record.
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetActiveRefreshTokenByHash returns the record matching the token
	// fingerprint only if it is active and unexpired at the given instant.
	// "Never issued", "superseded" and "expired" all collapse to ErrNotFound.
	GetActiveRefreshTokenByHash(ctx context.Context, hash string, now time.Time) (domain.RefreshToken, error)

	// DeactivateUserRefreshTokens flips every active record for the user
	// inactive (the blanket step of single-active-token issuance).
	DeactivateUserRefreshTokens(ctx context.Context, userID string) error

	// DeactivateRefreshToken flips the matching active record inactive and
	// reports whether one existed. Idempotent: a second call returns false.
	DeactivateRefreshToken(ctx context.Context, hash string) (bool, error)
}

type Products interface {
	CreateProduct(ctx context.Context, p domain.Product) error
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)

	// IsEmpty returns true if there are no products (used by demo seeding).
	IsEmpty(ctx context.Context) (bool, error)
}

type Warehouses interface {
	CreateWarehouse(ctx context.Context, w domain.Warehouse) error
	GetWarehouseByID(ctx context.Context, id string) (domain.Warehouse, error)
	ListWarehouses(ctx context.Context, limit, offset int) ([]domain.Warehouse, error)
}

type Inventory interface {
	CreateInventoryItem(ctx context.Context, item domain.InventoryItem) error

	// GetInventoryItem looks up the stock record for a product/warehouse pair.
	GetInventoryItem(ctx context.Context, productID, warehouseID string) (domain.InventoryItem, error)

	ListInventory(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error)

	// UpdateInventoryQuantity sets the quantity for a product/warehouse pair
	// and reports whether a matching record existed.
	UpdateInventoryQuantity(ctx context.Context, productID, warehouseID string, quantity int) (bool, error)
}
