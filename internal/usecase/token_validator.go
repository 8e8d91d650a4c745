package usecase

import (
	"github.com/google/uuid"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/jwt"
)

var ErrInvalidAccessToken = errs.New("invalid access token")

// TokenValidator authenticates bearer tokens for the HTTP layer without
// exposing the JWT implementation to middleware.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	service *jwt.Service
}

func NewTokenValidator(service *jwt.Service) TokenValidator {
	return &jwtTokenValidator{service: service}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.service.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidAccessToken)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", ErrInvalidAccessToken
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidAccessToken)
	}
	return claims.UserID, role, nil
}
