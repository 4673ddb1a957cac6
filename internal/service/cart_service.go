package service

import (
	"context"
	"fmt"

	"ethnic-elite/internal/catalog"
	"ethnic-elite/internal/checkout"
	"ethnic-elite/internal/model"
	"ethnic-elite/internal/session"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	sessions *session.Manager
	store    *catalog.Store
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(sessions *session.Manager, store *catalog.Store, logger zerolog.Logger) CartService {
	return &cartService{
		sessions: sessions,
		store:    store,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the cart's current lines and total.
func (s *cartService) Get(ctx context.Context, sessionID string) (*model.CartView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return &model.CartView{
		Items: sess.Cart.Items(),
		Total: sess.Cart.Total(),
	}, nil
}

// AddToCart adds a product to the cart; adding an already-present
// product leaves the cart unchanged.
func (s *cartService) AddToCart(ctx context.Context, sessionID, productID string) (*model.CartView, error) {
	sess, product, err := s.resolve(sessionID, productID)
	if err != nil {
		return nil, err
	}

	if added := sess.Cart.Add(*product); added {
		s.logger.Info().
			Str("session_id", sessionID).
			Str("product_id", productID).
			Msg("product added to cart")
	} else {
		s.logger.Debug().
			Str("session_id", sessionID).
			Str("product_id", productID).
			Msg("product already in cart")
	}

	return &model.CartView{
		Items: sess.Cart.Items(),
		Total: sess.Cart.Total(),
	}, nil
}

// BuyNow adds a product to the cart and enters checkout at the shipping
// step, bypassing the cart view.
func (s *cartService) BuyNow(ctx context.Context, sessionID, productID string) (*checkout.View, error) {
	sess, product, err := s.resolve(sessionID, productID)
	if err != nil {
		return nil, err
	}

	sess.Cart.Add(*product)
	if err := sess.Checkout.Start(); err != nil {
		return nil, fmt.Errorf("failed to start checkout: %w", err)
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("product_id", productID).
		Msg("buy-now entered checkout")

	view := sess.Checkout.View()
	return &view, nil
}

// UpdateQuantity adjusts a line's quantity by delta, flooring at 1.
// Unknown product IDs leave the cart unchanged.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*model.CartView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Cart.UpdateQuantity(productID, delta)
	s.logger.Debug().
		Str("session_id", sessionID).
		Str("product_id", productID).
		Int("delta", delta).
		Msg("cart quantity updated")

	return &model.CartView{
		Items: sess.Cart.Items(),
		Total: sess.Cart.Total(),
	}, nil
}

// resolve looks up the session and product together.
func (s *cartService) resolve(sessionID, productID string) (*session.Session, *model.Product, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, nil, err
	}

	product, ok := s.store.Get(productID)
	if !ok {
		s.logger.Warn().
			Str("session_id", sessionID).
			Str("product_id", productID).
			Msg("product not found")
		return nil, nil, model.ErrProductNotFound
	}

	return sess, &product, nil
}
