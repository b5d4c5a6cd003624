package domain

import (
	"context"
	"time"
)

// User is a registered account. PasswordHash never leaves the service.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Identity is the authenticated caller decoded from a bearer token.
type Identity struct {
	UserID int64
	Email  string
}

// UserRepository defines the contract for credential storage.
type UserRepository interface {
	// Create inserts user and fills in its ID and CreatedAt.
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
