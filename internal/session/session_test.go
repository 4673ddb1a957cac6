package session

import (
	"testing"
	"time"

	"ethnic-elite/internal/ledger"
	"ethnic-elite/internal/model"
	"ethnic-elite/internal/payment"
	"ethnic-elite/internal/stylist"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *Manager {
	gw := payment.NewSimulatedGateway(time.Millisecond, zerolog.Nop())
	return NewManager(gw, ledger.NewGenerator(), stylist.NewUnavailableAdvisor(), "catalogue", time.Second, zerolog.Nop())
}

func TestManager_Create(t *testing.T) {
	m := testManager()

	s := m.Create()

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), s.CreatedAt, time.Second)

	// Every session starts empty except for the stylist greeting.
	assert.Zero(t, s.Cart.Len())
	assert.Zero(t, s.Ledger.Len())
	require.Len(t, s.Stylist.Messages(), 1)
	assert.Equal(t, stylist.Greeting, s.Stylist.Messages()[0].Text)
	assert.Equal(t, "shipping", s.Checkout.View().Step)
	assert.Equal(t, 1, m.Len())
}

func TestManager_Get(t *testing.T) {
	m := testManager()
	s := m.Create()

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestManager_Get_Unknown(t *testing.T) {
	m := testManager()

	got, err := m.Get("nope")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := testManager()
	first := m.Create()
	second := m.Create()

	require.NotEqual(t, first.ID, second.ID)

	first.Cart.Add(model.Product{
		ID: "K001", Name: "Royal Blue Anarkali", Category: model.CategoryAnarkali,
		Price: 2499, Colors: []string{"Royal Blue"}, Sizes: []string{"M"},
	})

	assert.Equal(t, 1, first.Cart.Len())
	assert.Zero(t, second.Cart.Len())
	assert.Equal(t, 2, m.Len())
}
