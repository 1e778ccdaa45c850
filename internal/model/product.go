package model

import "time"

// Product is a sellable item with a bill of materials. Materials holds the
// ids of the materials it consumes, in calculation order. Referenced ids are
// expected to resolve to materials in the same category, but that is not
// enforced at write time; the calculator skips unresolved pairs.
type Product struct {
	ID              string    `json:"id" validate:"required"`
	CategoryID      string    `json:"category_id" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description"`
	SuggestedWeight float64   `json:"suggested_weight" validate:"required,gt=0"`
	Unit            string    `json:"unit"`
	Materials       []string  `json:"materials"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}
