package service

import (
	"context"
	"testing"
	"time"

	"ethnic-elite/internal/catalog"
	"ethnic-elite/internal/ledger"
	"ethnic-elite/internal/model"
	"ethnic-elite/internal/payment"
	"ethnic-elite/internal/session"
	"ethnic-elite/internal/stylist"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Authorize(ctx context.Context, req payment.Request) (*payment.Receipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Receipt), args.Error(1)
}

type mockAdvisor struct {
	mock.Mock
}

func (m *mockAdvisor) Advise(ctx context.Context, userText, catalogSummary string) (string, error) {
	args := m.Called(ctx, userText, catalogSummary)
	return args.String(0), args.Error(1)
}

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore([]model.Product{
		{
			ID: "K001", Name: "Royal Blue Anarkali", Category: model.CategoryAnarkali,
			Price: 2499, OriginalPrice: 3999, Rating: 4.8, Reviews: 124,
			Colors: []string{"Royal Blue", "Maroon"}, Sizes: []string{"S", "M", "L"},
		},
		{
			ID: "K002", Name: "White Chikankari Kurti", Category: model.CategoryStraight,
			Price: 1299, OriginalPrice: 1899, Rating: 4.6, Reviews: 89,
			Colors: []string{"White"}, Sizes: []string{"M", "L"},
		},
	})
	require.NoError(t, err)
	return store
}

// testEnv wires a real session manager over mock gateway and advisor.
type testEnv struct {
	store    *catalog.Store
	sessions *session.Manager
	gateway  *mockGateway
	advisor  *mockAdvisor
	session  *session.Session
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := testStore(t)
	gw := new(mockGateway)
	advisor := new(mockAdvisor)
	sessions := session.NewManager(gw, ledger.NewGenerator(), advisor, store.Summary(), time.Second, zerolog.Nop())
	return &testEnv{
		store:    store,
		sessions: sessions,
		gateway:  gw,
		advisor:  advisor,
		session:  sessions.Create(),
	}
}

var _ stylist.Advisor = (*mockAdvisor)(nil)
var _ payment.Gateway = (*mockGateway)(nil)
