package repository

import (
	"context"
	"errors"

	"usersapi/models"
)

// ErrUserNotFound is returned by UpdateUser and DeleteUser when no row has the given id.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user operations
type UserRepository interface {
	// CreateUser inserts user and sets user.ID to the id assigned by the store.
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByID returns nil, nil when no user has the id.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, skip, take int) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
}
