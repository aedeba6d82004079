package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// Every folder, application and lookup entry is owned by exactly one User.
type User struct {
	// ID is the stable unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password carries the plain-text password on register/login requests only.
	// It is never persisted and never written back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	PasswordHash string `json:"-"`

	// Superuser grants access to resources of every owner.
	Superuser bool `json:"is_superuser"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Principal returns the authenticated actor view of u.
func (u User) Principal() Principal {
	return Principal{ID: u.ID, Superuser: u.Superuser}
}
