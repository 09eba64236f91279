package usersrepobridge

import (
	"fmt"

	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
)

// CreateUserInput is the request body for creating a user. An id in the body
// is ignored; the store assigns one.
type CreateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks the presence constraints.
func (c CreateUserInput) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Email == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

func (c CreateUserInput) toNewUser() usersrepo.NewUser {
	return usersrepo.NewUser{
		Name:  c.Name,
		Email: c.Email,
	}
}
