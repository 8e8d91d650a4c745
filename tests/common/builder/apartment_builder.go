//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	domapartment "staybook/internal/domain/apartment"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"
)

type ApartmentBuilder struct {
	ID           uuid.UUID
	Title        string
	Location     string
	Description  string
	PriceCents   int64
	Bedrooms     int
	Bathrooms    int
	Capacity     int
	CategoryID   uuid.UUID
	CategoryName string
	Amenities    []string
	Features     []string
	Images       []string
	MainImage    string
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewApartmentBuilder() *ApartmentBuilder {
	now := time.Now()
	return &ApartmentBuilder{
		ID:           uuid.New(),
		Title:        "Sunny Two-Bedroom Flat",
		Location:     "14 Harbour Street, Lisbon",
		Description:  "Bright apartment close to the waterfront.",
		PriceCents:   15000,
		Bedrooms:     2,
		Bathrooms:    1,
		Capacity:     4,
		CategoryID:   uuid.New(),
		CategoryName: "2BHK",
		Amenities:    []string{"wifi", "kitchen"},
		Features:     []string{"balcony"},
		Images:       []string{"flat-front.jpg"},
		MainImage:    "flat-front.jpg",
		IsAvailable:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *ApartmentBuilder) With(mutate func(*ApartmentBuilder)) *ApartmentBuilder {
	mutate(b)
	return b
}

func (b *ApartmentBuilder) spec() domapartment.Spec {
	return domapartment.Spec{
		Title:       b.Title,
		Location:    b.Location,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Bedrooms:    b.Bedrooms,
		Bathrooms:   b.Bathrooms,
		Capacity:    b.Capacity,
		CategoryID:  b.CategoryID,
		Amenities:   b.Amenities,
		Features:    b.Features,
		Images:      b.Images,
		MainImage:   b.MainImage,
		IsAvailable: b.IsAvailable,
	}
}

func (b *ApartmentBuilder) BuildDomain() (*domapartment.Apartment, error) {
	return domapartment.NewApartment(b.spec())
}

func (b *ApartmentBuilder) BuildReconstructed() *domapartment.Apartment {
	return domapartment.ReconstructApartment(b.ID, b.spec(), b.CreatedAt, b.UpdatedAt)
}

func (b *ApartmentBuilder) BuildSnapshot() *shared.ApartmentSnapshot {
	return &shared.ApartmentSnapshot{
		ID:          b.ID,
		Title:       b.Title,
		Location:    b.Location,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Bedrooms:    b.Bedrooms,
		Bathrooms:   b.Bathrooms,
		Capacity:    b.Capacity,
		CategoryID:  b.CategoryID,
		Amenities:   b.Amenities,
		Features:    b.Features,
		Images:      b.Images,
		MainImage:   b.MainImage,
		IsAvailable: b.IsAvailable,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *ApartmentBuilder) BuildCreateRequestDTO() reqdto.CreateApartmentRequest {
	avail := b.IsAvailable
	return reqdto.CreateApartmentRequest{
		Title:       b.Title,
		Location:    b.Location,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		Bedrooms:    b.Bedrooms,
		Bathrooms:   b.Bathrooms,
		Capacity:    b.Capacity,
		Category:    b.CategoryID,
		Amenities:   b.Amenities,
		Features:    b.Features,
		Images:      b.Images,
		MainImage:   b.MainImage,
		IsAvailable: &avail,
	}
}

func (b *ApartmentBuilder) BuildViewQuery() *queries.ApartmentView {
	return &queries.ApartmentView{
		ID:           b.ID,
		Title:        b.Title,
		Location:     b.Location,
		Description:  b.Description,
		PriceCents:   b.PriceCents,
		Bedrooms:     b.Bedrooms,
		Bathrooms:    b.Bathrooms,
		Capacity:     b.Capacity,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
		Amenities:    b.Amenities,
		Features:     b.Features,
		Images:       b.Images,
		MainImage:    b.MainImage,
		IsAvailable:  b.IsAvailable,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
