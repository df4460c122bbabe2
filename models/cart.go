package models

// CartItem is one line of the shopping cart. Identity is the product ID;
// adding the same ID again bumps Quantity instead of appending a new line.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// WishlistItem keeps price/image for display only; no quantity.
type WishlistItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
