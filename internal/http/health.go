package http

import (
	"net/http"

	"github.com/abdulwahed-sweden/e-commerce-backend/internal/store"
	"github.com/abdulwahed-sweden/e-commerce-backend/pkg/httpx"
)

// LivezHandler reports process liveness. It never touches dependencies.
type LivezHandler struct{}

func (h *LivezHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ReadyzHandler reports readiness: the process can serve traffic only when
// the database answers a ping.
type ReadyzHandler struct {
	Store store.Store
}

func (h *ReadyzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
