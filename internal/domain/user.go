package domain

import "time"

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// User is the domain model for account holders. Balance is kept in minor
// currency units; the auth flows initialize it to zero and never mutate it.
type User struct {
	ID           string
	Name         string
	MobileNumber string
	Email        string
	PINHash      string
	Role         string
	Status       UserStatus
	Balance      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
