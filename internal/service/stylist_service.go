package service

import (
	"context"

	"ethnic-elite/internal/model"
	"ethnic-elite/internal/session"

	"github.com/rs/zerolog"
)

// stylistService implements StylistService.
type stylistService struct {
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewStylistService creates a new stylist service.
func NewStylistService(sessions *session.Manager, logger zerolog.Logger) StylistService {
	return &stylistService{
		sessions: sessions,
		logger:   logger.With().Str("service", "stylist").Logger(),
	}
}

// Messages returns the chat log in order.
func (s *stylistService) Messages(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Stylist.Messages(), nil
}

// Send submits a shopper message and returns the updated log. Advisor
// failures never surface here; the session substitutes the fallback
// reply.
func (s *stylistService) Send(ctx context.Context, sessionID, text string) ([]model.ChatMessage, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.Stylist.Send(ctx, text); err != nil {
		s.logger.Debug().
			Str("session_id", sessionID).
			Err(err).
			Msg("stylist message rejected")
		return nil, err
	}

	return sess.Stylist.Messages(), nil
}
