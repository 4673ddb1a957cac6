// Package session owns the per-shopper state: cart, checkout flow, order
// ledger and stylist chat live for the duration of one storefront
// session and are reachable only through it.
package session

import (
	"sync"
	"time"

	"ethnic-elite/internal/cart"
	"ethnic-elite/internal/checkout"
	"ethnic-elite/internal/ledger"
	"ethnic-elite/internal/model"
	"ethnic-elite/internal/payment"
	"ethnic-elite/internal/stylist"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session is one shopper's owned state.
type Session struct {
	ID        string
	CreatedAt time.Time
	Cart      *cart.Cart
	Checkout  *checkout.Flow
	Ledger    *ledger.Ledger
	Stylist   *stylist.Session
}

// Manager creates and resolves sessions. Sessions are held in memory for
// the process lifetime; there is no expiry or persistence.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	gateway        payment.Gateway
	ids            ledger.Generator
	advisor        stylist.Advisor
	catalogSummary string
	stylistTimeout time.Duration
	logger         zerolog.Logger
}

// NewManager creates a session manager. The identifier generator is
// shared across sessions so order IDs stay unique process-wide.
func NewManager(
	gateway payment.Gateway,
	ids ledger.Generator,
	advisor stylist.Advisor,
	catalogSummary string,
	stylistTimeout time.Duration,
	logger zerolog.Logger,
) *Manager {
	return &Manager{
		sessions:       make(map[string]*Session),
		gateway:        gateway,
		ids:            ids,
		advisor:        advisor,
		catalogSummary: catalogSummary,
		stylistTimeout: stylistTimeout,
		logger:         logger.With().Str("component", "session-manager").Logger(),
	}
}

// Create builds a new session with an empty cart, a fresh checkout flow,
// an empty ledger and a greeted stylist chat.
func (m *Manager) Create() *Session {
	c := cart.New()
	l := ledger.New()

	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Cart:      c,
		Ledger:    l,
		Checkout:  checkout.NewFlow(c, l, m.ids, m.gateway, m.logger),
		Stylist:   stylist.NewSession(m.advisor, m.catalogSummary, m.stylistTimeout, m.logger),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Info().Str("session_id", s.ID).Msg("session created")
	return s
}

// Get resolves a session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return s, nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
