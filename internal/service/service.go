package service

import (
	"context"

	"ethnic-elite/internal/checkout"
	"ethnic-elite/internal/model"
)

// ProductService defines read operations over the catalogue.
type ProductService interface {
	// GetAll retrieves all products, optionally filtered by category.
	GetAll(ctx context.Context, category string) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// CartService defines operations on a session's cart.
type CartService interface {
	// Get returns the cart's current lines and total.
	Get(ctx context.Context, sessionID string) (*model.CartView, error)

	// AddToCart adds a product to the cart. Adding a product already in
	// the cart is a no-op.
	AddToCart(ctx context.Context, sessionID, productID string) (*model.CartView, error)

	// BuyNow adds a product to the cart and enters checkout at the
	// shipping step.
	BuyNow(ctx context.Context, sessionID, productID string) (*checkout.View, error)

	// UpdateQuantity adjusts a line's quantity by delta, flooring at 1.
	UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*model.CartView, error)
}

// CheckoutService defines operations on a session's checkout flow.
type CheckoutService interface {
	// Get returns the current checkout state.
	Get(ctx context.Context, sessionID string) (*checkout.View, error)

	// Start enters the checkout flow at the shipping step.
	Start(ctx context.Context, sessionID string) (*checkout.View, error)

	// SetAddress records the shipping address.
	SetAddress(ctx context.Context, sessionID string, addr model.Address) (*checkout.View, error)

	// SelectPaymentMethod records the payment method.
	SelectPaymentMethod(ctx context.Context, sessionID, method string) (*checkout.View, error)

	// Next advances the checkout wizard.
	Next(ctx context.Context, sessionID string) (*checkout.View, error)

	// Back steps the checkout wizard backwards.
	Back(ctx context.Context, sessionID string) (*checkout.View, error)

	// Confirm authorises payment and, on success, produces the order.
	Confirm(ctx context.Context, sessionID string) (*model.Order, error)

	// Retry returns a failed checkout to the payment step.
	Retry(ctx context.Context, sessionID string) (*checkout.View, error)
}

// OrderService defines read operations over a session's order ledger.
type OrderService interface {
	// List returns the session's orders, most recent first.
	List(ctx context.Context, sessionID string) ([]model.Order, error)
}

// StylistService defines operations on a session's stylist chat.
type StylistService interface {
	// Messages returns the chat log in order.
	Messages(ctx context.Context, sessionID string) ([]model.ChatMessage, error)

	// Send submits a shopper message and returns the updated log.
	Send(ctx context.Context, sessionID, text string) ([]model.ChatMessage, error)
}
