package dto

type ErrorResponse struct {
	Error string `json:"error" example:"invalid body"`
	Field string `json:"field,omitempty" example:"title"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}
