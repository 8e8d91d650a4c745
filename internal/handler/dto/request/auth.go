package request

import (
	"staybook/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type Credentials struct {
	Email    user.Email
	Password user.Password
}

func (r LoginRequest) ToDomain() (Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return Credentials{}, err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Email: email, Password: pass}, nil
}
