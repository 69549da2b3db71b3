package models

import "time"

// CartItem is a snapshot of a product taken when it is added to the
// cart. Later catalog changes never affect items already in a cart.
type CartItem struct {
	ProductID   int
	Name        string
	Price       int
	Image       string
	Description string
	AddedAt     time.Time
}
