package routes

import (
	"github.com/gin-gonic/gin"

	accountControllers "github.com/kiko146/my-online-shop/controllers/account"
	"github.com/kiko146/my-online-shop/store"
)

// SetupAccountRoutes registers signup, login and logout.
func SetupAccountRoutes(r *gin.Engine, users *store.Users) {
	r.GET("/signup", accountControllers.ShowSignup())   // GET /signup
	r.POST("/signup", accountControllers.Signup(users)) // POST /signup

	r.GET("/login", accountControllers.ShowLogin())   // GET /login
	r.POST("/login", accountControllers.Login(users)) // POST /login

	r.GET("/logout", accountControllers.Logout()) // GET /logout
}
