package dto

import (
	"time"

	"github.com/todotrack/todo-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never leaves
// the service.
type UserDTO struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse is the payload returned on successful login.
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
