package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ethnic-elite/internal/checkout"
	"ethnic-elite/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSession = "4f9c39c8-1a5e-4be0-9b1e-1c51d9f58a34"

func sessionRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set(SessionHeader, testSession)
	return req
}

func TestCartHandler_Get(t *testing.T) {
	svc := new(mockCartService)
	svc.On("Get", mock.Anything, testSession).Return(&model.CartView{
		Items: []model.CartLine{{Product: model.Product{ID: "K001", Price: 2499}, Quantity: 2, SelectedSize: "M", SelectedColor: "Royal Blue"}},
		Total: 4998,
	}, nil)

	h := NewCartHandler(svc, zerolog.Nop())
	w := httptest.NewRecorder()

	h.Get(w, sessionRequest(http.MethodGet, "/api/cart", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var view model.CartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, 4998.0, view.Total)
	svc.AssertExpectations(t)
}

func TestCartHandler_Get_UnknownSession(t *testing.T) {
	svc := new(mockCartService)
	svc.On("Get", mock.Anything, "").Return(nil, model.ErrSessionNotFound)

	h := NewCartHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()

	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeSessionNotFound, resp.Error)
}

func TestCartHandler_AddItem(t *testing.T) {
	svc := new(mockCartService)
	svc.On("AddToCart", mock.Anything, testSession, "K001").Return(&model.CartView{
		Items: []model.CartLine{{Product: model.Product{ID: "K001"}, Quantity: 1}},
		Total: 2499,
	}, nil)

	h := NewCartHandler(svc, zerolog.Nop())
	w := httptest.NewRecorder()

	h.AddItem(w, sessionRequest(http.MethodPost, "/api/cart/items", `{"productId":"K001"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCartHandler_AddItem_InvalidJSON(t *testing.T) {
	h := NewCartHandler(new(mockCartService), zerolog.Nop())
	w := httptest.NewRecorder()

	h.AddItem(w, sessionRequest(http.MethodPost, "/api/cart/items", "{not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeInvalidJSON, resp.Error)
}

func TestCartHandler_AddItem_ProductNotFound(t *testing.T) {
	svc := new(mockCartService)
	svc.On("AddToCart", mock.Anything, testSession, "K999").Return(nil, model.ErrProductNotFound)

	h := NewCartHandler(svc, zerolog.Nop())
	w := httptest.NewRecorder()

	h.AddItem(w, sessionRequest(http.MethodPost, "/api/cart/items", `{"productId":"K999"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_BuyNow(t *testing.T) {
	svc := new(mockCartService)
	svc.On("BuyNow", mock.Anything, testSession, "K002").Return(&checkout.View{Step: checkout.StepShipping}, nil)

	h := NewCartHandler(svc, zerolog.Nop())
	w := httptest.NewRecorder()

	h.BuyNow(w, sessionRequest(http.MethodPost, "/api/cart/buy-now", `{"productId":"K002"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var view checkout.View
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	assert.Equal(t, checkout.StepShipping, view.Step)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	svc := new(mockCartService)
	svc.On("UpdateQuantity", mock.Anything, testSession, "K001", -1).Return(&model.CartView{
		Items: []model.CartLine{{Product: model.Product{ID: "K001"}, Quantity: 1}},
		Total: 2499,
	}, nil)

	h := NewCartHandler(svc, zerolog.Nop())
	w := httptest.NewRecorder()

	h.UpdateQuantity(w, sessionRequest(http.MethodPatch, "/api/cart/items/K001", `{"delta":-1}`))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCartHandler_UpdateQuantity_MissingID(t *testing.T) {
	h := NewCartHandler(new(mockCartService), zerolog.Nop())
	w := httptest.NewRecorder()

	h.UpdateQuantity(w, sessionRequest(http.MethodPatch, "/api/cart/items/", `{"delta":1}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_MethodNotAllowed(t *testing.T) {
	h := NewCartHandler(new(mockCartService), zerolog.Nop())

	w := httptest.NewRecorder()
	h.AddItem(w, sessionRequest(http.MethodGet, "/api/cart/items", ""))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = httptest.NewRecorder()
	h.UpdateQuantity(w, sessionRequest(http.MethodPost, "/api/cart/items/K001", `{"delta":1}`))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
