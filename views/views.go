package views

import (
	"github.com/gin-gonic/gin"

	"github.com/kiko146/my-online-shop/session"
)

// Render draws an HTML template, adding the bits every page needs:
// pending flash messages and the logged-in username for the navbar.
func Render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = session.PopFlashes(c)
	data["Username"] = c.GetString("username")
	c.HTML(code, name, data)
}
