package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// simulatedGateway approves every payment after a fixed delay. It stands
// in for a real acquirer; the delay models authorisation latency. A
// cancelled or expired context is reported as a timeout so checkout
// never waits forever on a stalled authorisation.
type simulatedGateway struct {
	delay  time.Duration
	logger zerolog.Logger
}

// NewSimulatedGateway creates a gateway that authorises after delay.
func NewSimulatedGateway(delay time.Duration, logger zerolog.Logger) Gateway {
	return &simulatedGateway{
		delay:  delay,
		logger: logger.With().Str("component", "payment-gateway").Logger(),
	}
}

// Authorize waits out the configured delay, then issues a receipt.
func (g *simulatedGateway) Authorize(ctx context.Context, req Request) (*Receipt, error) {
	g.logger.Debug().
		Float64("amount", req.Amount).
		Str("method", req.Method).
		Msg("authorising payment")

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		g.logger.Warn().
			Err(ctx.Err()).
			Float64("amount", req.Amount).
			Msg("payment authorisation abandoned")
		return nil, ErrTimeout
	case <-timer.C:
	}

	receipt := &Receipt{
		ID:           uuid.New().String(),
		Amount:       req.Amount,
		Method:       req.Method,
		AuthorisedAt: time.Now(),
	}

	g.logger.Info().
		Str("receipt_id", receipt.ID).
		Float64("amount", req.Amount).
		Str("method", req.Method).
		Msg("payment authorised")

	return receipt, nil
}
