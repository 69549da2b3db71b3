package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kiko146/my-online-shop/catalog"
	"github.com/kiko146/my-online-shop/store"
)

// SetupRoutes is the single entry-point that wires up the page, shop,
// and account route groups.
func SetupRoutes(r *gin.Engine, products *catalog.Catalog, users *store.Users) {
	// Public pages
	SetupPageRoutes(r)

	// Catalog browsing + session cart
	SetupShopRoutes(r, products)

	// Signup / login / logout
	SetupAccountRoutes(r, users)
}
