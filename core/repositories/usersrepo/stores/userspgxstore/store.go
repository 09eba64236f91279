// Package userspgxstore implements usersrepo.Storer against the users table.
// Every statement is parameterized; one pooled connection is borrowed per
// call and released on return.
package userspgxstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
	"github.com/OreBoia/my-rest-app/infrastructure/postgresdb"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

// Store issues user statements against the pgx pool.
type Store struct {
	log  *logger.Logger
	pool *postgresdb.Pool
}

// NewStore creates a pgx-backed user store.
func NewStore(log *logger.Logger, pool *postgresdb.Pool) *Store {
	return &Store{
		log:  log,
		pool: pool,
	}
}

// List returns all users ordered by id, which matches insertion order for
// the identity column.
func (s *Store) List(ctx context.Context) ([]usersrepo.User, error) {
	const q = `
	SELECT
		id, name, email
	FROM
		users
	ORDER BY
		id`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", postgresdb.HandlePgError(err))
	}
	defer rows.Close()

	var users []usersrepo.User
	for rows.Next() {
		var user usersrepo.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", postgresdb.HandlePgError(err))
	}

	return users, nil
}

// Create inserts the draft and returns the row with the database-assigned id.
func (s *Store) Create(ctx context.Context, nu usersrepo.NewUser) (usersrepo.User, error) {
	const q = `
	INSERT INTO users
		(name, email)
	VALUES
		($1, $2)
	RETURNING
		id, name, email`

	var user usersrepo.User
	if err := s.pool.QueryRow(ctx, q, nu.Name, nu.Email).Scan(&user.ID, &user.Name, &user.Email); err != nil {
		return usersrepo.User{}, fmt.Errorf("insert user: %w", postgresdb.HandlePgError(err))
	}

	return user, nil
}

// Delete removes the row and returns it, mapping the empty result to
// usersrepo.ErrNotFound.
func (s *Store) Delete(ctx context.Context, id int) (usersrepo.User, error) {
	const q = `
	DELETE FROM users
	WHERE
		id = $1
	RETURNING
		id, name, email`

	var user usersrepo.User
	if err := s.pool.QueryRow(ctx, q, id).Scan(&user.ID, &user.Name, &user.Email); err != nil {
		err = postgresdb.HandlePgError(err)
		if errors.Is(err, postgresdb.ErrDBNotFound) {
			return usersrepo.User{}, usersrepo.ErrNotFound
		}
		return usersrepo.User{}, fmt.Errorf("delete user: %w", err)
	}

	return user, nil
}
