package restclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
)

// UsersService is the gateway for the users resource. Each method is a
// single request/response exchange.
type UsersService struct {
	client *Client
}

// List fetches all users.
func (s *UsersService) List(ctx context.Context) ([]usersrepo.User, error) {
	var users []usersrepo.User
	if err := s.client.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create submits the draft and returns the stored user with its assigned id.
func (s *UsersService) Create(ctx context.Context, nu usersrepo.NewUser) (usersrepo.User, error) {
	var user usersrepo.User
	if err := s.client.do(ctx, http.MethodPost, "/api/users", nu, &user); err != nil {
		return usersrepo.User{}, err
	}
	return user, nil
}

// Delete removes the user by id and returns the removed entity.
func (s *UsersService) Delete(ctx context.Context, id int) (usersrepo.User, error) {
	var user usersrepo.User
	path := fmt.Sprintf("/api/users/%d", id)
	if err := s.client.do(ctx, http.MethodDelete, path, nil, &user); err != nil {
		return usersrepo.User{}, err
	}
	return user, nil
}
