package user

import (
	"context"
)

// UserRepository defines data access for user accounts. Account creation
// is an operations concern (seed script); the API only reads.
type UserRepository interface {
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// List retrieves all users ordered by full name
	List(ctx context.Context) ([]User, error)
}
