package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/kiko146/my-online-shop/models"
)

// Cookie session keys.
const (
	keyCart     = "cart"
	keyUserID   = "user_id"
	keyUsername = "username"
)

func init() {
	gob.Register([]models.CartItem{})
	gob.Register(FlashMessage{})
}

// State is everything a client session carries: the cart and, after
// login, the user's identity. It travels in a signed cookie, so every
// handler loads it, works on the value, and saves it back.
type State struct {
	Cart     []models.CartItem
	UserID   string
	Username string
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s State) LoggedIn() bool {
	return s.UserID != ""
}

// CartTotal sums the prices of everything in the cart.
func (s State) CartTotal() int {
	total := 0
	for _, item := range s.Cart {
		total += item.Price
	}
	return total
}

// Load decodes the session state from the request cookie. A client
// seen for the first time gets the zero State.
func Load(c *gin.Context) State {
	sess := sessions.Default(c)

	var state State
	if cart, ok := sess.Get(keyCart).([]models.CartItem); ok {
		state.Cart = cart
	}
	if id, ok := sess.Get(keyUserID).(string); ok {
		state.UserID = id
	}
	if name, ok := sess.Get(keyUsername).(string); ok {
		state.Username = name
	}
	return state
}

// Save writes the state back into the cookie.
func Save(c *gin.Context, state State) error {
	sess := sessions.Default(c)
	sess.Set(keyCart, state.Cart)
	if state.UserID != "" {
		sess.Set(keyUserID, state.UserID)
		sess.Set(keyUsername, state.Username)
	} else {
		sess.Delete(keyUserID)
		sess.Delete(keyUsername)
	}
	return sess.Save()
}

// Clear drops the whole session: cart, identity, pending flashes.
func Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}
