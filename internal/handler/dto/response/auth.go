package response

import (
	"time"

	"github.com/google/uuid"

	"staybook/internal/usecase/queries"
)

type LoginResponse struct {
	UserID       uuid.UUID `json:"userId"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        rm.ID,
		Email:     rm.Email,
		Role:      rm.Role,
		IsActive:  rm.IsActive,
		LastLogin: rm.LastLogin,
	}
}
