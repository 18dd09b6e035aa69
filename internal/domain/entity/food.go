package entity

import "time"

// FoodItem is a catalog entry. Owned by the catalog; created and deleted
// only through admin operations.
type FoodItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"` // free-text label, e.g. "Biryani"
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}
