package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the storefront routes. The webhook route must see the request
// body untouched, so no body-touching middleware goes anywhere near it.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", h.ListProducts)
	r.Get("/products", h.ListProducts)
	r.Get("/products/{slug}", h.GetProduct)
	r.Post("/checkout", h.StartCheckout)
	r.Get("/purchase/success", h.PurchaseSuccess)
	r.Get("/api/download/{slug}", h.Download)
	r.Method(http.MethodPost, "/api/webhooks/stripe", h.webhook)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
