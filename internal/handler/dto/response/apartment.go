package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"staybook/internal/usecase/queries"
)

type ApartmentResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Capacity     int       `json:"capacity"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Amenities    []string  `json:"amenities"`
	Features     []string  `json:"features"`
	Images       []string  `json:"images"`
	MainImage    string    `json:"mainImage"`
	IsAvailable  bool      `json:"isAvailable"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromApartmentView(rm *queries.ApartmentView) *ApartmentResponse {
	var resp ApartmentResponse
	// Field names are aligned with the read model on purpose.
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromApartmentViews(rms []*queries.ApartmentView) []*ApartmentResponse {
	responses := make([]*ApartmentResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromApartmentView(rm)
	}
	return responses
}

type SearchResponse struct {
	Count      int                  `json:"count"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	Apartments []*ApartmentResponse `json:"apartments"`
}

func FromSearchResult(result *queries.SearchResult, page, limit int) *SearchResponse {
	apartments := make([]*ApartmentResponse, len(result.Apartments))
	for i := range result.Apartments {
		apartments[i] = FromApartmentView(&result.Apartments[i])
	}
	return &SearchResponse{
		Count:      result.Count,
		Total:      result.Total,
		Page:       page,
		Limit:      limit,
		Apartments: apartments,
	}
}
