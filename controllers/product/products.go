package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kiko146/my-online-shop/catalog"
	"github.com/kiko146/my-online-shop/views"
)

// GET /products
func ShowProducts(store *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		views.Render(c, http.StatusOK, "products.html", gin.H{
			"Title":    "Products",
			"Products": store.List(),
		})
	}
}

// GET /product/:product_id
func ProductDetail(store *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}

		product, ok := store.Get(id)
		if !ok {
			c.String(http.StatusNotFound, "Product not found")
			return
		}

		views.Render(c, http.StatusOK, "product_detail.html", gin.H{
			"Title":   product.Name,
			"Product": product,
		})
	}
}
