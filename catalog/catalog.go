package catalog

import "github.com/kiko146/my-online-shop/models"

// Catalog is the fixed, ordered product list. It is built once at
// startup and never mutated afterwards.
type Catalog struct {
	products []models.Product
}

func New(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

// Default returns the catalog the shop ships with.
func Default() *Catalog {
	return New([]models.Product{
		{
			ID:          1,
			Name:        "Laptop",
			Price:       1200,
			Image:       "images/laptop.jpeg",
			Images:      "images/laptop.jpeg",
			Description: "A high-performance laptop suitable for work, gaming, and entertainment.",
		},
		{
			ID:          2,
			Name:        "Phone",
			Price:       800,
			Image:       "images/phones.jpeg",
			Images:      "images/phones.jpeg",
			Description: "Latest smartphone with powerful camera and long-lasting battery.",
		},
		{
			ID:          3,
			Name:        "Headphones",
			Price:       150,
			Image:       "images/headphones.jpeg",
			Images:      "images/headphones.jpeg",
			Description: "Noise-cancelling headphones with immersive sound quality.",
		},
		{
			ID:          4,
			Name:        "Mouse",
			Price:       200,
			Image:       "images/mouse.jpeg",
			Images:      "images/mouse.jpeg",
			Description: "Ergonomic wireless mouse with fast response and comfort grip.",
		},
	})
}

// List returns every product in catalog order.
func (c *Catalog) List() []models.Product {
	return c.products
}

// Get looks a product up by id. The second return is false when no
// product with that id exists.
func (c *Catalog) Get(id int) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
