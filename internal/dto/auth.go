package dto

import (
	"time"

	"finance-dashboard/internal/model"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserPayload is the user representation returned to clients. It never
// carries the credential hash.
type UserPayload struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User    UserPayload `json:"user"`
	Token   string      `json:"token"`
	Message string      `json:"message,omitempty"`
}

func NewUserPayload(user *model.User) UserPayload {
	return UserPayload{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}
