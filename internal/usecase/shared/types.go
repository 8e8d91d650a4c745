package shared

import (
	"time"

	"staybook/internal/domain/apartment"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side query types.
type ApartmentSnapshot struct {
	ID          uuid.UUID
	Title       string
	Location    string
	Description string
	PriceCents  int64
	Bedrooms    int
	Bathrooms   int
	Capacity    int
	CategoryID  uuid.UUID
	Amenities   []string
	Features    []string
	Images      []string
	MainImage   string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *ApartmentSnapshot) ToDomain() *apartment.Apartment {
	return apartment.ReconstructApartment(s.ID, apartment.Spec{
		Title:       s.Title,
		Location:    s.Location,
		Description: s.Description,
		PriceCents:  s.PriceCents,
		Bedrooms:    s.Bedrooms,
		Bathrooms:   s.Bathrooms,
		Capacity:    s.Capacity,
		CategoryID:  s.CategoryID,
		Amenities:   s.Amenities,
		Features:    s.Features,
		Images:      s.Images,
		MainImage:   s.MainImage,
		IsAvailable: s.IsAvailable,
	}, s.CreatedAt, s.UpdatedAt)
}

type BookingSnapshot struct {
	ID          uuid.UUID
	ApartmentID uuid.UUID
	UserID      *uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	Nights      int
	TotalCents  int64
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	Status      string
}

type CategorySnapshot struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
