package models

// Product is a fixed catalog entry. The catalog lives in memory and is
// read-only at runtime, so there are no GORM tags here.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // minor-unit-agnostic integer
	Image       string `json:"image"`
	Images      string `json:"images"`
	Description string `json:"description"`
}
