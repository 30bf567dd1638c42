package dtos

import (
	"time"

	"github.com/hanuchaudhary/Job-Portal/internal/models"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=Recruiter Candidate"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries the self-service profile update. Both fields are
// optional; empty means "leave unchanged".
type UpdateUserRequest struct {
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// UserResponse is the public profile returned from signup and signin: the
// stored record minus the password hash.
type UserResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FullName  string      `json:"fullName"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
