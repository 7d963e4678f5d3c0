package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// PasswordHash holds the bcrypt hash; it never leaves the store/hasher
// boundary. Everything API-facing goes through Profile().
type User struct {
	ID           string
	Nombre       string
	Email        string
	PasswordHash string
	Telefono     string
	Edad         int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile is the sanitized projection of a User: every field except the
// password hash.
type UserProfile struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Edad      int       `json:"edad"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile returns the sanitized projection of u.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Telefono:  u.Telefono,
		Edad:      u.Edad,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
