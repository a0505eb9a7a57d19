package app

import (
	"context"
	"fmt"
	"time"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/cryptox"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/idx"
)

// seedDemoData populates demo accounts and a small Swedish catalog on first
// start. Seeding is skipped entirely once either table has rows, so it never
// touches an existing installation. Demo passwords bypass the registration
// strength policy on purpose; they are development fixtures.
func (a *Application) seedDemoData(ctx context.Context) error {
	empty, err := a.store.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}

	if empty {
		users := []struct {
			email    string
			password string
			role     domain.Role
		}{
			{"admin@company.se", "admin123", domain.RoleAdmin},
			{"manager@company.se", "manager123", domain.RoleManager},
			{"user@company.se", "user123", domain.RoleViewer},
		}

		for _, u := range users {
			hash, err := cryptox.HashPassword(u.password, a.cfg.BcryptCost)
			if err != nil {
				return err
			}
			err = a.store.Users().CreateUser(ctx, domain.User{
				ID:           idx.New().String(),
				Email:        u.email,
				PasswordHash: hash,
				Role:         u.role,
				IsActive:     true,
				CreatedAt:    time.Now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("seed user %s: %w", u.email, err)
			}
		}
		a.logger.Info("seeded demo users", "count", len(users))
	}

	empty, err = a.store.Products().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	products := []domain.Product{
		{
			Name:        "Trådlösa hörlurar",
			Description: "Brusreducerande over-ear hörlurar",
			Price:       1299.00,
			Category:    "Elektronik",
			Brand:       "Sonat",
			IsActive:    true,
		},
		{
			Name:        "Kaffebryggare",
			Description: "12-koppars bryggare med termoskanna",
			Price:       899.00,
			Category:    "Hushåll",
			Brand:       "Brygg & Co",
			IsActive:    true,
		},
		{
			Name:        "Skrivbordslampa",
			Description: "Dimbar LED-lampa i borstat stål",
			Price:       449.00,
			Category:    "Belysning",
			Brand:       "Ljusdal",
			IsActive:    true,
		},
	}
	for i := range products {
		products[i].ID = idx.New().String()
		if err := a.store.Products().CreateProduct(ctx, products[i]); err != nil {
			return fmt.Errorf("seed product %s: %w", products[i].Name, err)
		}
	}

	warehouses := []domain.Warehouse{
		{Name: "Centrallager Stockholm", City: "Stockholm", Address: "Lagervägen 1", Postcode: "120 30", Capacity: 10000},
		{Name: "Lager Göteborg", City: "Göteborg", Address: "Hamngatan 12", Postcode: "411 06", Capacity: 6000},
	}
	for i := range warehouses {
		warehouses[i].ID = idx.New().String()
		if err := a.store.Warehouses().CreateWarehouse(ctx, warehouses[i]); err != nil {
			return fmt.Errorf("seed warehouse %s: %w", warehouses[i].Name, err)
		}
	}

	for i, p := range products {
		item := domain.InventoryItem{
			ID:                idx.New().String(),
			ProductID:         p.ID,
			WarehouseID:       warehouses[i%len(warehouses)].ID,
			Quantity:          50 + 25*i,
			MinimumStockLevel: 10,
		}
		if err := a.store.Inventory().CreateInventoryItem(ctx, item); err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
	}

	a.logger.Info("seeded demo catalog",
		"products", len(products),
		"warehouses", len(warehouses),
	)
	return nil
}
