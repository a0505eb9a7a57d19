package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/service"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store"
)

func newCatalogService(t *testing.T) *service.CatalogService {
	t.Helper()
	return &service.CatalogService{Store: newTestStore(t)}
}

func TestProductLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	created, err := svc.CreateProduct(ctx, domain.Product{
		Name:        "Kaffebryggare",
		Description: "12-koppars kaffebryggare",
		Price:       499.00,
		Category:    "Hushåll",
		Brand:       "Moccamaster",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)

	list, err := svc.ListProducts(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListProductsClampsPaging(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateProduct(ctx, domain.Product{Name: "p", Price: 1})
		require.NoError(t, err)
	}

	list, err := svc.ListProducts(ctx, -5, -5)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = svc.ListProducts(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = svc.ListProducts(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWarehouseLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	created, err := svc.CreateWarehouse(ctx, domain.Warehouse{
		Name:     "Centrallager Syd",
		City:     "Malmö",
		Address:  "Lagergatan 1",
		Postcode: "211 00",
		Capacity: 5000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.GetWarehouse(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetWarehouse(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrNotFound)

	list, err := svc.ListWarehouses(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInventoryLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newCatalogService(t)

	p, err := svc.CreateProduct(ctx, domain.Product{Name: "Stol", Price: 199})
	require.NoError(t, err)
	w, err := svc.CreateWarehouse(ctx, domain.Warehouse{Name: "Nord", City: "Umeå"})
	require.NoError(t, err)

	item, err := svc.AddInventory(ctx, domain.InventoryItem{
		ProductID:         p.ID,
		WarehouseID:       w.ID,
		Quantity:          40,
		MinimumStockLevel: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	// Unknown references are rejected before any write.
	_, err = svc.AddInventory(ctx, domain.InventoryItem{ProductID: "missing", WarehouseID: w.ID})
	assert.ErrorIs(t, err, service.ErrNotFound)
	_, err = svc.AddInventory(ctx, domain.InventoryItem{ProductID: p.ID, WarehouseID: "missing"})
	assert.ErrorIs(t, err, service.ErrNotFound)

	// Same pair twice is a conflict.
	_, err = svc.AddInventory(ctx, domain.InventoryItem{ProductID: p.ID, WarehouseID: w.ID, Quantity: 1})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	updated, err := svc.SetInventoryQuantity(ctx, p.ID, w.ID, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Quantity)

	got, err := svc.GetInventoryItem(ctx, p.ID, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.Quantity)

	_, err = svc.GetInventoryItem(ctx, "missing", w.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.SetInventoryQuantity(ctx, p.ID, "missing", 1)
	assert.ErrorIs(t, err, service.ErrNotFound)

	list, err := svc.ListInventory(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 25, list[0].Quantity)
}
