package pageControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiko146/my-online-shop/views"
)

// GET /
func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		views.Render(c, http.StatusOK, "home.html", gin.H{"Title": "Home"})
	}
}

// GET /about
func About() gin.HandlerFunc {
	return func(c *gin.Context) {
		views.Render(c, http.StatusOK, "about.html", gin.H{"Title": "About"})
	}
}
