// Package usersrepo provides access to user storage.
package usersrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// ErrNotFound is returned when no user carries the requested id.
var ErrNotFound = errors.New("user not found")

// Storer defines the data storage interface for User. The store is the sole
// authority for id assignment.
type Storer interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, nu NewUser) (User, error)
	Delete(ctx context.Context, id int) (User, error)
}

// Repository provides access to user storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new User repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns all users in insertion order.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	users, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create stores the draft and returns the user including its assigned id.
func (r *Repository) Create(ctx context.Context, nu NewUser) (User, error) {
	user, err := r.storer.Create(ctx, nu)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	r.log.InfoContext(ctx, "user created", "id", user.ID)
	return user, nil
}

// Delete removes the user with the given id and returns it. ErrNotFound
// passes through untouched so callers can classify it.
func (r *Repository) Delete(ctx context.Context, id int) (User, error) {
	user, err := r.storer.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("delete user %d: %w", id, err)
	}

	r.log.InfoContext(ctx, "user deleted", "id", user.ID)
	return user, nil
}
