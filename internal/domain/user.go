package domain

import "time"

type UserRole string

const (
	RoleClient UserRole = "client"
	RoleAdmin  UserRole = "admin"
	RoleWasher UserRole = "washer"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleClient, RoleAdmin, RoleWasher:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email" validate:"required,email"`
	Address      string    `json:"address,omitempty"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
