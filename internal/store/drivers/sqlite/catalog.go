package sqlite

import (
	"context"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
)

type productsRepo struct {
	db dbtx
}

const productColumns = `id, name, description, price, category, brand, image_url, is_active`

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price, category, brand, image_url, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.Brand, p.ImageURL, p.IsActive)
	return mapConflict(err)
}

func (r *productsRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id)

	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Brand, &p.ImageURL, &p.IsActive)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return p, nil
}

func (r *productsRepo) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Brand, &p.ImageURL, &p.IsActive); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

type warehousesRepo struct {
	db dbtx
}

const warehouseColumns = `id, name, city, address, postcode, capacity`

func (r *warehousesRepo) CreateWarehouse(ctx context.Context, w domain.Warehouse) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO warehouses (id, name, city, address, postcode, capacity)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.City, w.Address, w.Postcode, w.Capacity)
	return mapConflict(err)
}

func (r *warehousesRepo) GetWarehouseByID(ctx context.Context, id string) (domain.Warehouse, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+warehouseColumns+` FROM warehouses WHERE id = ?`, id)

	var w domain.Warehouse
	err := row.Scan(&w.ID, &w.Name, &w.City, &w.Address, &w.Postcode, &w.Capacity)
	if err != nil {
		return domain.Warehouse{}, mapNotFound(err)
	}
	return w, nil
}

func (r *warehousesRepo) ListWarehouses(ctx context.Context, limit, offset int) ([]domain.Warehouse, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+warehouseColumns+` FROM warehouses ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.City, &w.Address, &w.Postcode, &w.Capacity); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

type inventoryRepo struct {
	db dbtx
}

const inventoryColumns = `id, product_id, warehouse_id, quantity, minimum_stock_level`

func (r *inventoryRepo) CreateInventoryItem(ctx context.Context, item domain.InventoryItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inventory (id, product_id, warehouse_id, quantity, minimum_stock_level)
		 VALUES (?, ?, ?, ?, ?)`,
		item.ID, item.ProductID, item.WarehouseID, item.Quantity, item.MinimumStockLevel)
	return mapConflict(err)
}

func (r *inventoryRepo) GetInventoryItem(
	ctx context.Context,
	productID, warehouseID string,
) (domain.InventoryItem, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventory WHERE product_id = ? AND warehouse_id = ?`,
		productID, warehouseID)

	var item domain.InventoryItem
	err := row.Scan(&item.ID, &item.ProductID, &item.WarehouseID, &item.Quantity, &item.MinimumStockLevel)
	if err != nil {
		return domain.InventoryItem{}, mapNotFound(err)
	}
	return item, nil
}

func (r *inventoryRepo) ListInventory(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inventoryColumns+` FROM inventory ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.WarehouseID, &item.Quantity, &item.MinimumStockLevel); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *inventoryRepo) UpdateInventoryQuantity(
	ctx context.Context,
	productID, warehouseID string,
	quantity int,
) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE inventory SET quantity = ? WHERE product_id = ? AND warehouse_id = ?`,
		quantity, productID, warehouseID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
