package dto

import (
	"time"

	"github.com/payswift/auth-service/internal/domain"
)

// RegisterRequest payload for new accounts. Field names follow the public
// wire contract (camelCase).
type RegisterRequest struct {
	Name         string `json:"name"`
	PIN          string `json:"pin"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

// LoginRequest payload for login. Identifier is a mobile number or email.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	PIN        string `json:"pin"`
}

// LoginResponse returned on successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserResponse is the account view returned to authenticated callers.
// The PIN hash is deliberately absent.
type UserResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MobileNumber string    `json:"mobileNumber"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	Balance      int64     `json:"balance"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUserResponse maps a domain user onto the response shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		MobileNumber: user.MobileNumber,
		Email:        user.Email,
		Role:         user.Role,
		Status:       string(user.Status),
		Balance:      user.Balance,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
