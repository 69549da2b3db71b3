package accountControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kiko146/my-online-shop/auth"
	"github.com/kiko146/my-online-shop/models"
	"github.com/kiko146/my-online-shop/session"
	"github.com/kiko146/my-online-shop/store"
	"github.com/kiko146/my-online-shop/views"
)

type SignupInput struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// GET /signup
func ShowSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		views.Render(c, http.StatusOK, "signup.html", gin.H{"Title": "Sign Up"})
	}
}

// POST /signup
func Signup(users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBind(&input); err != nil {
			session.Flash(c, "danger", "All fields are required!")
			c.Redirect(http.StatusFound, "/signup")
			return
		}

		existing, err := users.FindByUsernameOrEmail(input.Username, input.Email)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to check account")
			return
		}
		if existing != nil {
			session.Flash(c, "danger", "Username or Email already exists!")
			c.Redirect(http.StatusFound, "/signup")
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to create account")
			return
		}

		user := models.User{
			ID:       uuid.NewString(),
			Username: input.Username,
			Email:    input.Email,
			Password: hash,
		}
		if err := users.Insert(&user); err != nil {
			if err == store.ErrDuplicateAccount {
				session.Flash(c, "danger", "Username or Email already exists!")
				c.Redirect(http.StatusFound, "/signup")
				return
			}
			c.String(http.StatusInternalServerError, "Failed to create account")
			return
		}

		session.Flash(c, "success", "Account created successfully! Please login.")
		c.Redirect(http.StatusFound, "/login")
	}
}

// GET /login
func ShowLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		views.Render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
	}
}

// POST /login
//
// A failed login re-renders the form instead of redirecting, so the
// invalid-credentials message shows up on the same response.
func Login(users *store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBind(&input); err != nil {
			session.Flash(c, "danger", "Invalid email or password!")
			views.Render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
			return
		}

		user, err := users.FindByEmail(input.Email)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to look up account")
			return
		}
		if user == nil || !auth.CheckPassword(user.Password, input.Password) {
			session.Flash(c, "danger", "Invalid email or password!")
			views.Render(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
			return
		}

		state := session.Load(c)
		state.UserID = user.ID
		state.Username = user.Username
		if err := session.Save(c, state); err != nil {
			c.String(http.StatusInternalServerError, "Failed to save session")
			return
		}

		session.Flash(c, "success", "Welcome back, "+user.Username+"!")
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.Clear(c); err != nil {
			c.String(http.StatusInternalServerError, "Failed to clear session")
			return
		}
		session.Flash(c, "info", "You have been logged out.")
		c.Redirect(http.StatusFound, "/")
	}
}
