package domain

import "time"

// User is a viewer and uploader. The ID is owned by the identity provider.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	ProfileImage string    `json:"profile_image"`
	Bio          string    `json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is what the identity provider tells us about a user on first sign-in.
type Identity struct {
	UserID       string
	Username     string
	ProfileImage string
}
