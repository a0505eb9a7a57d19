package service

import (
	"context"
	"errors"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/idx"
)

// ErrNotFound is returned by catalog lookups for missing records.
var ErrNotFound = errors.New("record not found")

const maxPageSize = 100

// CatalogService covers products, warehouses and per-warehouse stock levels.
// It is a thin layer over the store; ids are minted here so drivers stay
// oblivious to identifier format.
type CatalogService struct {
	Store store.Store
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *CatalogService) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.ID = idx.New().String()
	p.IsActive = true
	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	p, err := s.Store.Products().GetProductByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (s *CatalogService) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	limit, offset = clampPage(limit, offset)
	return s.Store.Products().ListProducts(ctx, limit, offset)
}

func (s *CatalogService) CreateWarehouse(ctx context.Context, w domain.Warehouse) (domain.Warehouse, error) {
	w.ID = idx.New().String()
	if err := s.Store.Warehouses().CreateWarehouse(ctx, w); err != nil {
		return domain.Warehouse{}, err
	}
	return w, nil
}

func (s *CatalogService) GetWarehouse(ctx context.Context, id string) (domain.Warehouse, error) {
	w, err := s.Store.Warehouses().GetWarehouseByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Warehouse{}, ErrNotFound
	}
	return w, err
}

func (s *CatalogService) ListWarehouses(ctx context.Context, limit, offset int) ([]domain.Warehouse, error) {
	limit, offset = clampPage(limit, offset)
	return s.Store.Warehouses().ListWarehouses(ctx, limit, offset)
}

// AddInventory records stock of a product at a warehouse. Both sides must
// exist; a second record for the same (product, warehouse) pair is a conflict.
func (s *CatalogService) AddInventory(
	ctx context.Context,
	item domain.InventoryItem,
) (domain.InventoryItem, error) {
	if _, err := s.GetProduct(ctx, item.ProductID); err != nil {
		return domain.InventoryItem{}, err
	}
	if _, err := s.GetWarehouse(ctx, item.WarehouseID); err != nil {
		return domain.InventoryItem{}, err
	}

	item.ID = idx.New().String()
	if err := s.Store.Inventory().CreateInventoryItem(ctx, item); err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

func (s *CatalogService) GetInventoryItem(
	ctx context.Context,
	productID, warehouseID string,
) (domain.InventoryItem, error) {
	item, err := s.Store.Inventory().GetInventoryItem(ctx, productID, warehouseID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.InventoryItem{}, ErrNotFound
	}
	return item, err
}

func (s *CatalogService) ListInventory(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error) {
	limit, offset = clampPage(limit, offset)
	return s.Store.Inventory().ListInventory(ctx, limit, offset)
}

// SetInventoryQuantity overwrites the stock level of an existing
// (product, warehouse) record and returns the updated record.
func (s *CatalogService) SetInventoryQuantity(
	ctx context.Context,
	productID, warehouseID string,
	quantity int,
) (domain.InventoryItem, error) {
	found, err := s.Store.Inventory().UpdateInventoryQuantity(ctx, productID, warehouseID, quantity)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	if !found {
		return domain.InventoryItem{}, ErrNotFound
	}
	return s.Store.Inventory().GetInventoryItem(ctx, productID, warehouseID)
}
