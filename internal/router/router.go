package router

import (
	"net/http"
	"strings"

	"ethnic-elite/internal/handler"
	"ethnic-elite/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers the router dispatches to.
type Handlers struct {
	Session  *handler.SessionHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
	Stylist  *handler.StylistHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/sessions", h.Session.Create)

	// Product routes: collection and per-ID lookups share a prefix.
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			h.Product.GetByID(w, r)
			return
		}
		h.Product.GetAll(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes.
	mux.HandleFunc("/api/cart", h.Cart.Get)
	mux.HandleFunc("/api/cart/buy-now", h.Cart.BuyNow)
	mux.HandleFunc("/api/cart/items", h.Cart.AddItem)
	mux.HandleFunc("/api/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/cart/items/") && r.URL.Path != "/api/cart/items/" {
			h.Cart.UpdateQuantity(w, r)
			return
		}
		h.Cart.AddItem(w, r)
	})

	// Checkout routes.
	mux.HandleFunc("/api/checkout", h.Checkout.Get)
	mux.HandleFunc("/api/checkout/start", h.Checkout.Start)
	mux.HandleFunc("/api/checkout/address", h.Checkout.SetAddress)
	mux.HandleFunc("/api/checkout/payment-method", h.Checkout.SetPaymentMethod)
	mux.HandleFunc("/api/checkout/next", h.Checkout.Next)
	mux.HandleFunc("/api/checkout/back", h.Checkout.Back)
	mux.HandleFunc("/api/checkout/confirm", h.Checkout.Confirm)
	mux.HandleFunc("/api/checkout/retry", h.Checkout.Retry)

	// Order and stylist routes.
	mux.HandleFunc("/api/orders", h.Order.List)
	mux.HandleFunc("/api/stylist/messages", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.Stylist.Send(w, r)
			return
		}
		h.Stylist.Messages(w, r)
	})

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var root http.Handler = mux
	root = middleware.APIKeyAuth(apiKey, logger)(root)
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
