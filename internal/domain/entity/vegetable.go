package entity

import "time"

// Vegetable is the in-memory shape of a produce listing. The hosted store
// keeps the same record under snake-cased column names; the Firestore
// adapter owns that mapping.
type Vegetable struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	InStock     bool      `json:"inStock"`
	VendorID    string    `json:"vendorId"`
	CreatedAt   time.Time `json:"createdAt"`
}
