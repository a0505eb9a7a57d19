package domain

// Product is a catalog entry.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	ImageURL    string
	IsActive    bool
}

// Warehouse is a storage location. Capacity is in cubic meters.
type Warehouse struct {
	ID       string
	Name     string
	City     string
	Address  string
	Postcode string
	Capacity int
}

// InventoryItem is the stock count for one product in one warehouse.
// The (ProductID, WarehouseID) pair is unique.
type InventoryItem struct {
	ID                string
	ProductID         string
	WarehouseID       string
	Quantity          int
	MinimumStockLevel int // alert threshold, informational only
}
