// Package stylist implements the AI style assistant: an append-only chat
// session backed by an external text-generation advisor.
package stylist

import (
	"context"
	"strings"
	"sync"
	"time"

	"ethnic-elite/internal/model"

	"github.com/rs/zerolog"
)

// Greeting seeds every new chat session.
const Greeting = "Namaste! I'm your AI Stylist. Looking for the perfect Kurti for a wedding, office, or casual brunch? Ask me anything!"

// Fallback substitutes for the advisor's reply whenever the advisor
// fails or returns nothing. Failures are fully absorbed; the shopper
// only ever sees this message, never an error.
const Fallback = "I'm having a bit of a fashion block! But I'd recommend our Royal Blue Anarkali for a royal festive look or our White Chikankari for timeless elegance."

// Advisor produces styling advice for a shopper utterance given a
// summary of the catalogue.
type Advisor interface {
	Advise(ctx context.Context, userText, catalogSummary string) (string, error)
}

// Session is one shopper's ordered chat log. A busy flag admits a single
// advisor request at a time; a concurrent send is rejected without
// touching the log. Safe for concurrent use.
type Session struct {
	advisor Advisor
	summary string
	timeout time.Duration
	logger  zerolog.Logger

	mu       sync.Mutex
	busy     bool
	messages []model.ChatMessage
}

// NewSession creates a chat session seeded with the greeting. The
// catalogue summary is fixed for the session lifetime, matching the
// immutable catalogue.
func NewSession(advisor Advisor, catalogSummary string, timeout time.Duration, logger zerolog.Logger) *Session {
	return &Session{
		advisor:  advisor,
		summary:  catalogSummary,
		timeout:  timeout,
		logger:   logger.With().Str("component", "stylist").Logger(),
		messages: []model.ChatMessage{{Role: model.RoleAssistant, Text: Greeting}},
	}
}

// Send appends the shopper's message, asks the advisor for a reply under
// the session timeout, and appends either the reply or the fixed
// fallback. Empty input and sends while a request is in flight are
// rejected with the log unchanged.
func (s *Session) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ErrEmptyMessage
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return model.ErrStylistBusy
	}
	s.busy = true
	s.messages = append(s.messages, model.ChatMessage{Role: model.RoleUser, Text: text})
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.advisor.Advise(ctx, text, s.summary)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		s.logger.Warn().Err(err).Msg("advisor failed, using fallback reply")
		reply = Fallback
	} else if strings.TrimSpace(reply) == "" {
		s.logger.Warn().Msg("advisor returned an empty reply, using fallback")
		reply = Fallback
	}

	s.messages = append(s.messages, model.ChatMessage{Role: model.RoleAssistant, Text: reply})
	return nil
}

// Messages returns a snapshot of the chat log in order.
func (s *Session) Messages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Busy reports whether an advisor request is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}
