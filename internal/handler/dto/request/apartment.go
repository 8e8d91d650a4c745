package request

import (
	"github.com/google/uuid"
)

type CreateApartmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents" binding:"required"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Capacity    int       `json:"capacity" binding:"required,min=1"`
	Category    uuid.UUID `json:"category" binding:"required"`
	Amenities   []string  `json:"amenities"`
	Features    []string  `json:"features"`
	Images      []string  `json:"images"`
	MainImage   string    `json:"mainImage"`
	IsAvailable *bool     `json:"isAvailable"`
}

// UpdateApartmentRequest is a partial update; nil fields keep their current
// values.
type UpdateApartmentRequest struct {
	Title       *string    `json:"title,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Description *string    `json:"description,omitempty"`
	PriceCents  *int64     `json:"priceCents,omitempty"`
	Bedrooms    *int       `json:"bedrooms,omitempty"`
	Bathrooms   *int       `json:"bathrooms,omitempty"`
	Capacity    *int       `json:"capacity,omitempty"`
	Category    *uuid.UUID `json:"category,omitempty"`
	Amenities   []string   `json:"amenities,omitempty"`
	Features    []string   `json:"features,omitempty"`
	Images      []string   `json:"images,omitempty"`
	MainImage   *string    `json:"mainImage,omitempty"`
	IsAvailable *bool      `json:"isAvailable,omitempty"`
}
