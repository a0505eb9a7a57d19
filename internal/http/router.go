package http

import (
	"log/slog"
	"net/http"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/domain"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/service"
	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/httpx"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/metricsx"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/slogx"
)

// Router wires handlers, middleware and route patterns into one http.Handler.
type Router struct {
	Logger  *slog.Logger
	Store   store.Store
	Auth    *service.AuthService
	Catalog *service.CatalogService

	mux     *http.ServeMux
	handler http.Handler
}

// ApplyRoutes registers every route. Reads on the catalog are open to all
// authenticated roles; writes require admin or manager.
func (rt *Router) ApplyRoutes() {
	rt.mux = http.NewServeMux()

	authn := Authenticate(rt.Auth)
	writers := RequireRole(domain.RoleAdmin, domain.RoleManager)

	// Authentication endpoints are public except /auth/me.
	rt.mux.Handle("POST /auth/register", &RegisterHandler{Auth: rt.Auth})
	rt.mux.Handle("POST /auth/login", &LoginHandler{Auth: rt.Auth})
	rt.mux.Handle("POST /auth/refresh", &RefreshHandler{Auth: rt.Auth})
	rt.mux.Handle("POST /auth/logout", &LogoutHandler{Auth: rt.Auth})
	rt.mux.Handle("GET /auth/me", httpx.Chain(&MeHandler{}, authn))

	rt.mux.Handle("GET /products", httpx.Chain(
		&ListProductsHandler{Catalog: rt.Catalog}, authn))
	rt.mux.Handle("GET /products/{id}", httpx.Chain(
		&GetProductHandler{Catalog: rt.Catalog}, authn))
	rt.mux.Handle("POST /products", httpx.Chain(
		&CreateProductHandler{Catalog: rt.Catalog}, authn, writers))

	rt.mux.Handle("GET /warehouses", httpx.Chain(
		&ListWarehousesHandler{Catalog: rt.Catalog}, authn))
	rt.mux.Handle("GET /warehouses/{id}", httpx.Chain(
		&GetWarehouseHandler{Catalog: rt.Catalog}, authn))
	rt.mux.Handle("POST /warehouses", httpx.Chain(
		&CreateWarehouseHandler{Catalog: rt.Catalog}, authn, writers))

	rt.mux.Handle("GET /inventory", httpx.Chain(
		&ListInventoryHandler{Catalog: rt.Catalog}, authn))
	rt.mux.Handle("POST /inventory", httpx.Chain(
		&AddInventoryHandler{Catalog: rt.Catalog}, authn, writers))
	rt.mux.Handle("GET /inventory/{productID}/{warehouseID}", httpx.Chain(
		&GetInventoryHandler{Catalog: rt.Catalog}, authn))
	rt.mux.Handle("PUT /inventory/{productID}/{warehouseID}", httpx.Chain(
		&UpdateInventoryHandler{Catalog: rt.Catalog}, authn, writers))

	rt.mux.Handle("GET /livez", &LivezHandler{})
	rt.mux.Handle("GET /readyz", &ReadyzHandler{Store: rt.Store})
	rt.mux.Handle("GET /metrics", metricsx.Handler())

	// Shared stack: request logging outermost, then metrics.
	rt.handler = httpx.Chain(rt.mux,
		slogx.HTTPMiddleware(rt.Logger),
		metricsx.HTTPMiddleware,
	)
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.handler.ServeHTTP(w, r)
}
