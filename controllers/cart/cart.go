package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiko146/my-online-shop/catalog"
	"github.com/kiko146/my-online-shop/models"
	"github.com/kiko146/my-online-shop/session"
	"github.com/kiko146/my-online-shop/views"
)

// GET /add_to_cart/:product_id
//
// Unknown ids are a silent no-op: the client is redirected back to the
// product list either way, with a confirmation flash only on success.
func AddToCart(store *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("product_id"))
		if err != nil {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}

		if product, ok := store.Get(id); ok {
			state := session.Load(c)
			state.Cart = append(state.Cart, models.CartItem{
				ProductID:   product.ID,
				Name:        product.Name,
				Price:       product.Price,
				Image:       product.Image,
				Description: product.Description,
				AddedAt:     time.Now(),
			})
			if err := session.Save(c, state); err != nil {
				c.String(http.StatusInternalServerError, "Failed to save cart")
				return
			}
			session.Flash(c, "success", product.Name+" added to cart!")
		}

		c.Redirect(http.StatusFound, "/products")
	}
}

// GET /cart
func ViewCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := session.Load(c)
		views.Render(c, http.StatusOK, "cart.html", gin.H{
			"Title": "Cart",
			"Cart":  state.Cart,
			"Total": state.CartTotal(),
		})
	}
}

// GET /clear_cart
//
// Idempotent: clearing an already empty cart is fine.
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := session.Load(c)
		state.Cart = nil
		if err := session.Save(c, state); err != nil {
			c.String(http.StatusInternalServerError, "Failed to clear cart")
			return
		}
		c.Redirect(http.StatusFound, "/cart")
	}
}
