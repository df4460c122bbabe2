package models

// Product is a catalog entry. The catalog is stored as one snapshot in the
// key-value store and replaced wholesale by the admin editor.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}
