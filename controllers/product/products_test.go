package productControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiko146/my-online-shop/catalog"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	r.Use(sessions.Sessions("session", cookie.NewStore([]byte("test-secret"))))

	store := catalog.Default()
	r.GET("/products", ShowProducts(store))
	r.GET("/product/:product_id", ProductDetail(store))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestShowProducts_ListsWholeCatalog(t *testing.T) {
	r := newTestRouter()

	w := get(r, "/products")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, name := range []string{"Laptop", "Phone", "Headphones", "Mouse"} {
		assert.Contains(t, body, name)
	}
}

func TestProductDetail_Found(t *testing.T) {
	r := newTestRouter()

	w := get(r, "/product/2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Phone")
	assert.Contains(t, w.Body.String(), "$800")
}

func TestProductDetail_Unknown(t *testing.T) {
	r := newTestRouter()

	w := get(r, "/product/999")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", w.Body.String())
}

func TestProductDetail_NonIntegerID(t *testing.T) {
	r := newTestRouter()

	w := get(r, "/product/abc")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
