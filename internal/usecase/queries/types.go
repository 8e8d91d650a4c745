package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID                uuid.UUID  `json:"id"`
	ApartmentID       uuid.UUID  `json:"apartment_id"`
	ApartmentTitle    string     `json:"apartment_title"`
	ApartmentLocation string     `json:"apartment_location"`
	UserID            *uuid.UUID `json:"user_id,omitempty"`
	CheckIn           time.Time  `json:"check_in"`
	CheckOut          time.Time  `json:"check_out"`
	Guests            int        `json:"guests"`
	Nights            int        `json:"nights"`
	TotalCents        int64      `json:"total_cents"`
	GuestName         string     `json:"guest_name"`
	GuestEmail        string     `json:"guest_email"`
	GuestPhone        string     `json:"guest_phone"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type ApartmentView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"price_cents"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Capacity     int       `json:"capacity"`
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Amenities    []string  `json:"amenities"`
	Features     []string  `json:"features"`
	Images       []string  `json:"images"`
	MainImage    string    `json:"main_image"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserCredentialsView struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type ApartmentFilter struct {
	CategoryID  *uuid.UUID
	IsAvailable *bool
}

type SearchParams struct {
	Query       string
	Location    string
	Category    string
	MinPrice    *int64
	MaxPrice    *int64
	Bedrooms    *int
	Bathrooms   *int
	MinCapacity *int
	MaxCapacity *int
	IsAvailable *bool
	Amenities   []string
	SortBy      string
	SortOrder   string
	Page        int
	Limit       int
}

type SearchResult struct {
	Count      int             `json:"count"`
	Total      int64           `json:"total"`
	Apartments []ApartmentView `json:"apartments"`
}
