package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ethnic-elite/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_GetAll(t *testing.T) {
	svc := new(mockProductService)
	svc.On("GetAll", mock.Anything, "").Return([]model.Product{
		{ID: "K001", Name: "Royal Blue Anarkali"},
		{ID: "K002", Name: "White Chikankari Kurti"},
	}, nil)

	h := NewProductHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	h.GetAll(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var products []model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.Len(t, products, 2)
	assert.Equal(t, "K001", products[0].ID)
	svc.AssertExpectations(t)
}

func TestProductHandler_GetAll_CategoryFilter(t *testing.T) {
	svc := new(mockProductService)
	svc.On("GetAll", mock.Anything, "Anarkali").Return([]model.Product{{ID: "K001"}}, nil)

	h := NewProductHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Anarkali", nil)
	w := httptest.NewRecorder()

	h.GetAll(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestProductHandler_GetAll_InvalidCategory(t *testing.T) {
	svc := new(mockProductService)
	svc.On("GetAll", mock.Anything, "Sherwani").Return(nil, model.ErrInvalidCategory)

	h := NewProductHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Sherwani", nil)
	w := httptest.NewRecorder()

	h.GetAll(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeInvalidCategory, resp.Error)
}

func TestProductHandler_GetAll_MethodNotAllowed(t *testing.T) {
	h := NewProductHandler(new(mockProductService), zerolog.Nop())
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	w := httptest.NewRecorder()

	h.GetAll(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestProductHandler_GetByID(t *testing.T) {
	svc := new(mockProductService)
	svc.On("GetByID", mock.Anything, "K001").Return(&model.Product{ID: "K001", Name: "Royal Blue Anarkali"}, nil)

	h := NewProductHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/products/K001", nil)
	w := httptest.NewRecorder()

	h.GetByID(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var product model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
	assert.Equal(t, "Royal Blue Anarkali", product.Name)
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	svc := new(mockProductService)
	svc.On("GetByID", mock.Anything, "K999").Return(nil, model.ErrProductNotFound)

	h := NewProductHandler(svc, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/products/K999", nil)
	w := httptest.NewRecorder()

	h.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, model.ErrCodeProductNotFound, resp.Error)
}

func TestProductHandler_GetByID_MissingID(t *testing.T) {
	h := NewProductHandler(new(mockProductService), zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/api/products/", nil)
	w := httptest.NewRecorder()

	h.GetByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
