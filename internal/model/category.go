package model

import "time"

// Category is a top-level grouping of products and materials. Categories are
// never deleted; deactivating one (active=false) hides it from all reads.
type Category struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Icon        string    `json:"icon" validate:"required"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
