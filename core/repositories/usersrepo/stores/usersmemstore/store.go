// Package usersmemstore implements usersrepo.Storer with an in-memory slice,
// the starter backend that needs no database.
package usersmemstore

import (
	"context"
	"sync"

	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// Store holds the user collection. The mutex serializes mutations so the
// next-id computation never works from a stale read.
type Store struct {
	log *logger.Logger

	mu    sync.Mutex
	users []usersrepo.User
}

// NewStore creates an empty in-memory store.
func NewStore(log *logger.Logger) *Store {
	return &Store{log: log}
}

// NewStoreWithUsers creates a store pre-populated with fixture rows. Ids are
// taken as given; the next assigned id continues from the maximum.
func NewStoreWithUsers(log *logger.Logger, users []usersrepo.User) *Store {
	s := NewStore(log)
	s.users = append(s.users, users...)
	return s
}

// List returns all users in insertion order. It never fails.
func (s *Store) List(ctx context.Context) ([]usersrepo.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]usersrepo.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// Create assigns the next id (max existing + 1, or 1 when empty), appends,
// and returns the stored user.
func (s *Store) Create(ctx context.Context, nu usersrepo.NewUser) (usersrepo.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := usersrepo.User{
		ID:    s.nextID(),
		Name:  nu.Name,
		Email: nu.Email,
	}
	s.users = append(s.users, user)
	return user, nil
}

// Delete removes the user with the given id and returns it, or
// usersrepo.ErrNotFound when the id is absent.
func (s *Store) Delete(ctx context.Context, id int) (usersrepo.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, user := range s.users {
		if user.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return user, nil
		}
	}

	return usersrepo.User{}, usersrepo.ErrNotFound
}

func (s *Store) nextID() int {
	max := 0
	for _, user := range s.users {
		if user.ID > max {
			max = user.ID
		}
	}
	return max + 1
}
