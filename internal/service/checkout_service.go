package service

import (
	"context"
	"time"

	"ethnic-elite/internal/checkout"
	"ethnic-elite/internal/model"
	"ethnic-elite/internal/session"

	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	sessions       *session.Manager
	confirmTimeout time.Duration
	logger         zerolog.Logger
}

// NewCheckoutService creates a new checkout service. confirmTimeout
// bounds a single confirmation attempt so a stalled gateway cannot leave
// the flow processing forever.
func NewCheckoutService(sessions *session.Manager, confirmTimeout time.Duration, logger zerolog.Logger) CheckoutService {
	return &checkoutService{
		sessions:       sessions,
		confirmTimeout: confirmTimeout,
		logger:         logger.With().Str("service", "checkout").Logger(),
	}
}

// Get returns the current checkout state.
func (s *checkoutService) Get(ctx context.Context, sessionID string) (*checkout.View, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	view := sess.Checkout.View()
	return &view, nil
}

// Start enters the checkout flow at the shipping step.
func (s *checkoutService) Start(ctx context.Context, sessionID string) (*checkout.View, error) {
	return s.transition(sessionID, "start", func(f *checkout.Flow) error {
		return f.Start()
	})
}

// SetAddress records the shipping address.
func (s *checkoutService) SetAddress(ctx context.Context, sessionID string, addr model.Address) (*checkout.View, error) {
	return s.transition(sessionID, "set_address", func(f *checkout.Flow) error {
		return f.SetAddress(addr)
	})
}

// SelectPaymentMethod records the payment method.
func (s *checkoutService) SelectPaymentMethod(ctx context.Context, sessionID, method string) (*checkout.View, error) {
	return s.transition(sessionID, "select_payment_method", func(f *checkout.Flow) error {
		return f.SelectPaymentMethod(method)
	})
}

// Next advances the checkout wizard.
func (s *checkoutService) Next(ctx context.Context, sessionID string) (*checkout.View, error) {
	return s.transition(sessionID, "next", func(f *checkout.Flow) error {
		return f.Next()
	})
}

// Back steps the checkout wizard backwards.
func (s *checkoutService) Back(ctx context.Context, sessionID string) (*checkout.View, error) {
	return s.transition(sessionID, "back", func(f *checkout.Flow) error {
		return f.Back()
	})
}

// Retry returns a failed checkout to the payment step.
func (s *checkoutService) Retry(ctx context.Context, sessionID string) (*checkout.View, error) {
	return s.transition(sessionID, "retry", func(f *checkout.Flow) error {
		return f.Retry()
	})
}

// Confirm authorises payment and, on success, produces the order.
func (s *checkoutService) Confirm(ctx context.Context, sessionID string) (*model.Order, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	order, err := sess.Checkout.Confirm(ctx)
	if err != nil {
		s.logger.Warn().
			Str("session_id", sessionID).
			Err(err).
			Msg("checkout confirmation failed")
		return nil, err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("order_id", order.ID).
		Float64("total", order.Total).
		Msg("checkout confirmed")

	return order, nil
}

// transition applies a flow mutation and returns the resulting view.
func (s *checkoutService) transition(sessionID, op string, fn func(*checkout.Flow) error) (*checkout.View, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(sess.Checkout); err != nil {
		s.logger.Debug().
			Str("session_id", sessionID).
			Str("op", op).
			Err(err).
			Msg("checkout transition rejected")
		return nil, err
	}

	view := sess.Checkout.View()
	return &view, nil
}
