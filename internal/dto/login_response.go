package dto

// swagger:model dto.LoginResponse
type LoginResponse struct {
	Token string       `json:"token" example:"eyJhbGciOi..."`
	User  UserResponse `json:"user"`
}
