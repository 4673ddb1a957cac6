package handler

import (
	"context"

	"ethnic-elite/internal/checkout"
	"ethnic-elite/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) GetAll(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

type mockCartService struct {
	mock.Mock
}

func (m *mockCartService) Get(ctx context.Context, sessionID string) (*model.CartView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartView), args.Error(1)
}

func (m *mockCartService) AddToCart(ctx context.Context, sessionID, productID string) (*model.CartView, error) {
	args := m.Called(ctx, sessionID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartView), args.Error(1)
}

func (m *mockCartService) BuyNow(ctx context.Context, sessionID, productID string) (*checkout.View, error) {
	args := m.Called(ctx, sessionID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.View), args.Error(1)
}

func (m *mockCartService) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*model.CartView, error) {
	args := m.Called(ctx, sessionID, productID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CartView), args.Error(1)
}

type mockCheckoutService struct {
	mock.Mock
}

func (m *mockCheckoutService) view(args mock.Arguments) (*checkout.View, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.View), args.Error(1)
}

func (m *mockCheckoutService) Get(ctx context.Context, sessionID string) (*checkout.View, error) {
	return m.view(m.Called(ctx, sessionID))
}

func (m *mockCheckoutService) Start(ctx context.Context, sessionID string) (*checkout.View, error) {
	return m.view(m.Called(ctx, sessionID))
}

func (m *mockCheckoutService) SetAddress(ctx context.Context, sessionID string, addr model.Address) (*checkout.View, error) {
	return m.view(m.Called(ctx, sessionID, addr))
}

func (m *mockCheckoutService) SelectPaymentMethod(ctx context.Context, sessionID, method string) (*checkout.View, error) {
	return m.view(m.Called(ctx, sessionID, method))
}

func (m *mockCheckoutService) Next(ctx context.Context, sessionID string) (*checkout.View, error) {
	return m.view(m.Called(ctx, sessionID))
}

func (m *mockCheckoutService) Back(ctx context.Context, sessionID string) (*checkout.View, error) {
	return m.view(m.Called(ctx, sessionID))
}

func (m *mockCheckoutService) Confirm(ctx context.Context, sessionID string) (*model.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *mockCheckoutService) Retry(ctx context.Context, sessionID string) (*checkout.View, error) {
	return m.view(m.Called(ctx, sessionID))
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) List(ctx context.Context, sessionID string) ([]model.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

type mockStylistService struct {
	mock.Mock
}

func (m *mockStylistService) Messages(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}

func (m *mockStylistService) Send(ctx context.Context, sessionID, text string) ([]model.ChatMessage, error) {
	args := m.Called(ctx, sessionID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChatMessage), args.Error(1)
}
