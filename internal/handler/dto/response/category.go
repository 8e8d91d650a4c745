package response

import (
	"time"

	"github.com/google/uuid"

	"staybook/internal/usecase/queries"
)

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromCategoryView(rm *queries.CategoryView) *CategoryResponse {
	return &CategoryResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromCategoryViews(rms []*queries.CategoryView) []*CategoryResponse {
	responses := make([]*CategoryResponse, len(rms))
	for i, rm := range rms {
		responses[i] = FromCategoryView(rm)
	}
	return responses
}
