package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isavelev/go-cart-keeper/internal/config"
	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/models"
)

func newTestCatalogAdapter(t *testing.T, serverURL string) CatalogAdapter {
	t.Helper()
	adapterCfg := config.Adapter{CatalogBaseURL: serverURL}

	a, err := NewHTTPCatalogAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewHTTPCatalogAdapter_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "whitespace", url: "   "},
		{name: "scheme only", url: "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPCatalogAdapter(config.Adapter{CatalogBaseURL: tt.url}, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestListProducts_Success(t *testing.T) {
	want := []models.Product{
		{ID: 1, Title: "Phone", Price: 549, Category: "smartphones"},
		{ID: 2, Title: "Laptop", Price: 1499, Category: "laptops"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("skip"))

		_ = json.NewEncoder(w).Encode(productPage{Products: want, Total: 2, Skip: 20, Limit: 10})
	}))
	defer srv.Close()

	a := newTestCatalogAdapter(t, srv.URL)
	got, err := a.ListProducts(context.Background(), 10, 20)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListProducts_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestCatalogAdapter(t, srv.URL)
	_, err := a.ListProducts(context.Background(), 0, 0)

	require.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestGetProduct_Success(t *testing.T) {
	want := models.Product{ID: 7, Title: "Headphones", Price: 99.9, Category: "audio"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestCatalogAdapter(t, srv.URL)
	got, err := a.GetProduct(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Product with id '999' not found"}`))
	}))
	defer srv.Close()

	a := newTestCatalogAdapter(t, srv.URL)
	_, err := a.GetProduct(context.Background(), 999)

	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestListCategories_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category-list", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]string{"smartphones", "laptops"})
	}))
	defer srv.Close()

	a := newTestCatalogAdapter(t, srv.URL)
	got, err := a.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"smartphones", "laptops"}, got)
}
