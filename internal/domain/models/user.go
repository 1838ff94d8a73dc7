package models

import (
	"time"

	"salonmarket/internal/domain"
)

// Account holds sign-in credentials. It never leaves the service.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// User is the profile row keyed by the account id.
type User struct {
	ID         int64       `json:"id"`
	Email      string      `json:"email"`
	FullName   string      `json:"fullName"`
	Role       domain.Role `json:"role"`
	Phone      string      `json:"phone,omitempty"`
	AvatarURL  string      `json:"avatarUrl,omitempty"`
	Address    string      `json:"address,omitempty"`
	City       string      `json:"city,omitempty"`
	Bio        string      `json:"bio,omitempty"`
	IsVerified bool        `json:"isVerified"`
	IsActive   bool        `json:"isActive"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// ProfileUpdate supports PATCH-style updates via key presence.
type ProfileUpdate struct {
	FullName  *string `json:"fullName"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Bio       *string `json:"bio"`
}

// SignUpMetadata is the optional profile data sent with a sign up.
type SignUpMetadata struct {
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}
