package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	// Create hashes the plain password and stores a new user.
	Create(ctx context.Context, email, password string) (User, error)
	// VerifyCredentials returns ErrInvalidCredentials for an unknown email
	// and for a wrong password alike.
	VerifyCredentials(ctx context.Context, email, password string) (User, error)
}

// User represents a registered account.
type User struct {
	ID             int64
	Email          string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
