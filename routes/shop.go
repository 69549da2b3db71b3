package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/kiko146/my-online-shop/controllers/cart"
	productControllers "github.com/kiko146/my-online-shop/controllers/product"
	"github.com/kiko146/my-online-shop/catalog"
)

// SetupShopRoutes registers catalog browsing and the session cart.
func SetupShopRoutes(r *gin.Engine, products *catalog.Catalog) {
	r.GET("/products", productControllers.ShowProducts(products))             // GET /products
	r.GET("/product/:product_id", productControllers.ProductDetail(products)) // GET /product/:product_id

	r.GET("/add_to_cart/:product_id", cartControllers.AddToCart(products)) // GET /add_to_cart/:product_id
	r.GET("/cart", cartControllers.ViewCart())                             // GET /cart
	r.GET("/clear_cart", cartControllers.ClearCart())                      // GET /clear_cart
}
