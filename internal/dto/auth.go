package dto

// LoginRequest accepts an email address or a phone number as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type LoginResponse struct {
	ID           uint   `json:"id"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Type         string `json:"type"`
}

// RefreshRequest: token is validated in the service so an empty body maps to
// 401 rather than a generic binding error.
type RefreshRequest struct {
	Token string `json:"token"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type LogoutRequest struct {
	Token string `json:"token"`
}
