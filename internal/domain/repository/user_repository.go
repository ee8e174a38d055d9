// Package repository defines the persistence interfaces of the domain layer.
package repository

import (
	"context"
	"errors"

	"shopfront/internal/domain/entity"
)

// ErrUserNotFound is returned when no user row matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists user accounts.
type UserRepository interface {
	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByProviderID retrieves a user by the external id of an OAuth
	// provider (google or github).
	FindByProviderID(ctx context.Context, provider entity.ProviderType, providerID string) (*entity.User, error)

	// Create persists a new user and fills in the generated id.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user row.
	Update(ctx context.Context, user *entity.User) error
}
