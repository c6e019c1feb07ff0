package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// The email is unique and acts as the authenticated caller identity
// supplied by the delivery layer.
type User struct {
	ID        int64     // Unique identifier
	Email     string    // Login email (unique, authentication subject)
	Nickname  string    // Display name
	Password  string    // Bcrypt hashed password
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByEmail retrieves a user by their email.
	// Returns ErrNotFound if the user doesn't exist.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByIDs retrieves users by given IDs.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error
}

// UserUsecase defines the business logic contract for user operations.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the email already exists.
	Register(ctx context.Context, nickname, email, password string) error

	// Login verifies user credentials and returns a JWT token
	// carrying the user's email as its subject.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, email, password string) (string, error)
}
