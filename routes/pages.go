package routes

import (
	"github.com/gin-gonic/gin"

	pageControllers "github.com/kiko146/my-online-shop/controllers/pages"
)

// SetupPageRoutes registers the static pages.
func SetupPageRoutes(r *gin.Engine) {
	r.GET("/", pageControllers.Home())       // GET /
	r.GET("/about", pageControllers.About()) // GET /about
}
