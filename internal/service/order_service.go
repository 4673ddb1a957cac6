package service

import (
	"context"

	"ethnic-elite/internal/model"
	"ethnic-elite/internal/session"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(sessions *session.Manager, logger zerolog.Logger) OrderService {
	return &orderService{
		sessions: sessions,
		logger:   logger.With().Str("service", "order").Logger(),
	}
}

// List returns the session's orders, most recent first.
func (s *orderService) List(ctx context.Context, sessionID string) ([]model.Order, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	orders := sess.Ledger.Orders()
	s.logger.Debug().
		Str("session_id", sessionID).
		Int("count", len(orders)).
		Msg("retrieved orders")

	return orders, nil
}
