package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store/drivers/sqlite"
)

type closeSpy struct {
	store.Store
	closed bool
}

func (c *closeSpy) Close() error {
	c.closed = true
	return c.Store.Close()
}

func TestRunClosesStoreWhenSeedingFails(t *testing.T) {
	// No migrations applied, so the seeding query hits a missing table.
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	spy := &closeSpy{Store: st}

	a := &Application{
		cfg:    Config{SeedDemoData: true},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		store:  spy,
	}

	err = a.Run(context.Background())
	require.Error(t, err)
	assert.True(t, spy.closed, "store must be closed when seeding aborts startup")
}
