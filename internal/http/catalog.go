package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/service"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/httpx"
)

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Brand:       p.Brand,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
	}
}

type warehouseResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	Address  string `json:"address,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Capacity int    `json:"capacity"`
}

func toWarehouseResponse(w domain.Warehouse) warehouseResponse {
	return warehouseResponse{
		ID:       w.ID,
		Name:     w.Name,
		City:     w.City,
		Address:  w.Address,
		Postcode: w.Postcode,
		Capacity: w.Capacity,
	}
}

type inventoryResponse struct {
	ID                string `json:"id"`
	ProductID         string `json:"product_id"`
	WarehouseID       string `json:"warehouse_id"`
	Quantity          int    `json:"quantity"`
	MinimumStockLevel int    `json:"minimum_stock_level"`
}

func toInventoryResponse(i domain.InventoryItem) inventoryResponse {
	return inventoryResponse{
		ID:                i.ID,
		ProductID:         i.ProductID,
		WarehouseID:       i.WarehouseID,
		Quantity:          i.Quantity,
		MinimumStockLevel: i.MinimumStockLevel,
	}
}

// pageParams reads limit/offset query parameters; service-level clamping
// handles out-of-range values.
func pageParams(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}

func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		errNotFound.write(w)
	case errors.Is(err, store.ErrAlreadyExists):
		errConflict.withDescription("record already exists").write(w)
	default:
		errServer.write(w)
	}
}

// CreateProductHandler adds a product to the catalog.
type CreateProductHandler struct {
	Catalog *service.CatalogService
}

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

func (h *CreateProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !decodeValid(w, r, &req) {
		return
	}

	p, err := h.Catalog.CreateProduct(r.Context(), domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Brand:       req.Brand,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProductResponse(p))
}

// GetProductHandler returns one product by id.
type GetProductHandler struct {
	Catalog *service.CatalogService
}

func (h *GetProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProductResponse(p))
}

// ListProductsHandler returns a page of products.
type ListProductsHandler struct {
	Catalog *service.CatalogService
}

func (h *ListProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	products, err := h.Catalog.ListProducts(r.Context(), limit, offset)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// CreateWarehouseHandler adds a warehouse.
type CreateWarehouseHandler struct {
	Catalog *service.CatalogService
}

type createWarehouseRequest struct {
	Name     string `json:"name" validate:"required"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
	Capacity int    `json:"capacity" validate:"gte=0"`
}

func (h *CreateWarehouseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createWarehouseRequest
	if !decodeValid(w, r, &req) {
		return
	}

	wh, err := h.Catalog.CreateWarehouse(r.Context(), domain.Warehouse{
		Name:     req.Name,
		City:     req.City,
		Address:  req.Address,
		Postcode: req.Postcode,
		Capacity: req.Capacity,
	})
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWarehouseResponse(wh))
}

// GetWarehouseHandler returns one warehouse by id.
type GetWarehouseHandler struct {
	Catalog *service.CatalogService
}

func (h *GetWarehouseHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	wh, err := h.Catalog.GetWarehouse(r.Context(), r.PathValue("id"))
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toWarehouseResponse(wh))
}

// ListWarehousesHandler returns a page of warehouses.
type ListWarehousesHandler struct {
	Catalog *service.CatalogService
}

func (h *ListWarehousesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	warehouses, err := h.Catalog.ListWarehouses(r.Context(), limit, offset)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	out := make([]warehouseResponse, 0, len(warehouses))
	for _, wh := range warehouses {
		out = append(out, toWarehouseResponse(wh))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// AddInventoryHandler records stock of a product at a warehouse.
type AddInventoryHandler struct {
	Catalog *service.CatalogService
}

type addInventoryRequest struct {
	ProductID         string `json:"product_id" validate:"required"`
	WarehouseID       string `json:"warehouse_id" validate:"required"`
	Quantity          int    `json:"quantity" validate:"gte=0"`
	MinimumStockLevel int    `json:"minimum_stock_level" validate:"gte=0"`
}

func (h *AddInventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req addInventoryRequest
	if !decodeValid(w, r, &req) {
		return
	}

	item, err := h.Catalog.AddInventory(r.Context(), domain.InventoryItem{
		ProductID:         req.ProductID,
		WarehouseID:       req.WarehouseID,
		Quantity:          req.Quantity,
		MinimumStockLevel: req.MinimumStockLevel,
	})
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInventoryResponse(item))
}

// ListInventoryHandler returns a page of stock records.
type ListInventoryHandler struct {
	Catalog *service.CatalogService
}

func (h *ListInventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	items, err := h.Catalog.ListInventory(r.Context(), limit, offset)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	out := make([]inventoryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toInventoryResponse(i))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// GetInventoryHandler returns the stock record for a product/warehouse pair.
type GetInventoryHandler struct {
	Catalog *service.CatalogService
}

func (h *GetInventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	item, err := h.Catalog.GetInventoryItem(
		r.Context(),
		r.PathValue("productID"),
		r.PathValue("warehouseID"),
	)
	if err != nil {
		writeCatalogError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInventoryResponse(item))
}

// UpdateInventoryHandler overwrites the stock level for a product/warehouse pair.
type UpdateInventoryHandler struct {
	Catalog *service.CatalogService
}

type updateInventoryRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func (h *UpdateInventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req updateInventoryRequest
	if !decodeValid(w, r, &req) {
		return
	}

	item, err := h.Catalog.SetInventoryQuantity(
		r.Context(),
		r.PathValue("productID"),
		r.PathValue("warehouseID"),
		req.Quantity,
	)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInventoryResponse(item))
}
