package dto

import (
	"time"

	"healthcare-clinic/internal/model"
)

// swagger:model dto.UserResponse
type UserResponse struct {
	ID       string     `json:"id" example:"6f1c2a9e-1b7d-4a55-9c8e-0a4f5e2d9b11"`
	Username string     `json:"username" example:"alice"`
	FullName string     `json:"fullName" example:"Alice Chen"`
	Email    string     `json:"email" example:"alice@example.com"`
	Role     model.Role `json:"role" example:"admin"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// swagger:model dto.AdminResponse
type AdminResponse struct {
	ID        string    `json:"id" example:"demo"`
	FullName  string    `json:"fullName" example:"Default Admin"`
	Username  string    `json:"username" example:"admin"`
	Email     string    `json:"email" example:"demo@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

func NewAdminResponse(u model.User) AdminResponse {
	return AdminResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
