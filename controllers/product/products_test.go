package productControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmora/storefront-api/models"
	"github.com/glowmora/storefront-api/store"
)

func newTestRouter() (*gin.Engine, *store.MemoryStore) {
	gin.SetMode(gin.TestMode)
	mem := store.NewMemoryStore()

	r := gin.New()
	r.GET("/products", GetProducts(mem))
	r.GET("/products/:id", GetProductByID(mem))
	r.PUT("/admin/products", ReplaceProducts(mem))
	return r, mem
}

func seedCatalog(t *testing.T, mem *store.MemoryStore) {
	t.Helper()
	require.NoError(t, mem.Set(context.Background(), store.KeyProducts, []models.Product{
		{ID: "p1", Name: "Rose Serum", Description: "Hydrating face serum", Price: 29.99, Category: "Skincare", InStock: true},
		{ID: "p2", Name: "Velvet Lipstick", Description: "Matte finish", Price: 14.50, Category: "Makeup", InStock: true},
	}))
}

func TestGetProducts(t *testing.T) {
	r, mem := newTestRouter()
	seedCatalog(t, mem)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestGetProductsEmptyCatalog(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetProductsFilters(t *testing.T) {
	r, mem := newTestRouter()
	seedCatalog(t, mem)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?category=Makeup", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?search=hydrating", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestGetProductByID(t *testing.T) {
	r, mem := newTestRouter()
	seedCatalog(t, mem)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/p1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Rose Serum", got.Name)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReplaceProducts(t *testing.T) {
	r, mem := newTestRouter()
	seedCatalog(t, mem)

	body := `[{"id":"p9","name":"Clay Mask","description":"Weekly detox","price":18,"image":"","category":"Skincare","inStock":true}]`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Product
	require.NoError(t, mem.Get(context.Background(), store.KeyProducts, &got))
	require.Len(t, got, 1, "the snapshot is replaced wholesale")
	assert.Equal(t, "p9", got[0].ID)
}

func TestReplaceProductsValidation(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/products", strings.NewReader(`[{"id":"","name":"Nameless","price":5}]`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
