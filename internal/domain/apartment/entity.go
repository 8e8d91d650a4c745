package apartment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleTooShort       = errors.New("title must be at least 5 characters")
	ErrTitleTooLong        = errors.New("title cannot exceed 100 characters")
	ErrLocationTooShort    = errors.New("location must be at least 5 characters")
	ErrDescriptionTooLong  = errors.New("description cannot exceed 1000 characters")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrNegativeBedrooms    = errors.New("bedrooms cannot be negative")
	ErrNegativeBathrooms   = errors.New("bathrooms cannot be negative")
	ErrInvalidCapacity     = errors.New("capacity must be at least 1")
	ErrMissingCategory     = errors.New("category is required")
)

const (
	MinTitleLength        = 5
	MaxTitleLength        = 100
	MinLocationLength     = 5
	MaxDescriptionLength  = 1000
)

// Apartment is the catalog aggregate. Its booked date ranges live in the
// store and are mutated only through booking admission.
type Apartment struct {
	id          uuid.UUID
	title       string
	location    string
	description string
	priceCents  int64
	bedrooms    int
	bathrooms   int
	capacity    int
	categoryID  uuid.UUID
	amenities   []string
	features    []string
	images      []string
	mainImage   string
	isAvailable bool
	createdAt   time.Time
	updatedAt   time.Time
}

type Spec struct {
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
}

func NewApartment(spec Spec) (*Apartment, error) {
	spec.Title = strings.TrimSpace(spec.Title)
	spec.Location = strings.TrimSpace(spec.Location)
	spec.Description = strings.TrimSpace(spec.Description)

	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	return &Apartment{
		id:          uuid.New(),
		title:       spec.Title,
		location:    spec.Location,
		description: spec.Description,
		priceCents:  spec.PriceCents,
		bedrooms:    spec.Bedrooms,
		bathrooms:   spec.Bathrooms,
		capacity:    spec.Capacity,
		categoryID:  spec.CategoryID,
		amenities:   spec.Amenities,
		features:    spec.Features,
		images:      spec.Images,
		mainImage:   spec.MainImage,
		isAvailable: spec.IsAvailable,
	}, nil
}

func ReconstructApartment(id uuid.UUID, spec Spec, createdAt, updatedAt time.Time) *Apartment {
	return &Apartment{
		id:          id,
		title:       spec.Title,
		location:    spec.Location,
		description: spec.Description,
		priceCents:  spec.PriceCents,
		bedrooms:    spec.Bedrooms,
		bathrooms:   spec.Bathrooms,
		capacity:    spec.Capacity,
		categoryID:  spec.CategoryID,
		amenities:   spec.Amenities,
		features:    spec.Features,
		images:      spec.Images,
		mainImage:   spec.MainImage,
		isAvailable: spec.IsAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func validateSpec(spec Spec) error {
	switch {
	case len(spec.Title) < MinTitleLength:
		return ErrTitleTooShort
	case len(spec.Title) > MaxTitleLength:
		return ErrTitleTooLong
	case len(spec.Location) < MinLocationLength:
		return ErrLocationTooShort
	case len(spec.Description) > MaxDescriptionLength:
		return ErrDescriptionTooLong
	case spec.PriceCents < 0:
		return ErrNegativePrice
	case spec.Bedrooms < 0:
		return ErrNegativeBedrooms
	case spec.Bathrooms < 0:
		return ErrNegativeBathrooms
	case spec.Capacity < 1:
		return ErrInvalidCapacity
	case spec.CategoryID == uuid.Nil:
		return ErrMissingCategory
	}
	return nil
}

func (a *Apartment) CanHost(guests int) bool {
	return guests >= 1 && guests <= a.capacity
}

func (a *Apartment) ID() uuid.UUID        { return a.id }
func (a *Apartment) Title() string        { return a.title }
func (a *Apartment) Location() string     { return a.location }
func (a *Apartment) Description() string  { return a.description }
func (a *Apartment) PriceCents() int64    { return a.priceCents }
func (a *Apartment) Bedrooms() int        { return a.bedrooms }
func (a *Apartment) Bathrooms() int       { return a.bathrooms }
func (a *Apartment) Capacity() int        { return a.capacity }
func (a *Apartment) CategoryID() uuid.UUID { return a.categoryID }
func (a *Apartment) Amenities() []string  { return a.amenities }
func (a *Apartment) Features() []string   { return a.features }
func (a *Apartment) Images() []string     { return a.images }
func (a *Apartment) MainImage() string    { return a.mainImage }
func (a *Apartment) IsAvailable() bool    { return a.isAvailable }
func (a *Apartment) CreatedAt() time.Time { return a.createdAt }
func (a *Apartment) UpdatedAt() time.Time { return a.updatedAt }
