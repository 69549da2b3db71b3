package middleware

import (
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/kiko146/my-online-shop/session"
)

// Sessions installs the signed-cookie session store. The signing key
// comes from SESSION_SECRET; forging or losing it invalidates every
// session, so production deployments must set it.
func Sessions() gin.HandlerFunc {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "supersecretkey"
		log.Println("⚠️ SESSION_SECRET not set, using insecure default")
	}
	return sessions.Sessions("session", cookie.NewStore([]byte(secret)))
}

// CurrentUser copies the session identity into the request context so
// views can show who is logged in without reloading the session.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := session.Load(c)
		if state.LoggedIn() {
			c.Set("user_id", state.UserID)
			c.Set("username", state.Username)
		}
		c.Next()
	}
}
