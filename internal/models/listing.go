package models

import (
	"fmt"
	"time"
)

// Category is one of the fixed set of listing categories.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFurniture   Category = "furniture"
	CategoryFashion     Category = "fashion"
	CategoryVehicles    Category = "vehicles"
	CategoryOther       Category = "other"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryFurniture,
	CategoryFashion,
	CategoryVehicles,
	CategoryOther,
}

// ParseCategory validates a raw category string against the closed set.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Listing represents a classified listing as it travels over the wire.
// ID and CreatedAt are assigned by the store; a listing is immutable once created.
type Listing struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	SellerEmail string    `json:"seller_email"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
