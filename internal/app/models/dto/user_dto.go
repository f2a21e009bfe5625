package dto

import "github.com/yigit/coursehub/internal/app/models"

// CreateUserRequest represents user creation data. PasswordHash is expected
// to be hashed by the caller.
type CreateUserRequest struct {
	Name         string      `json:"name" validate:"required"`
	Email        string      `json:"email" validate:"required,email"`
	PasswordHash string      `json:"password_hash" validate:"required"`
	Role         models.Role `json:"role" validate:"required,oneof=teacher student"`
}
