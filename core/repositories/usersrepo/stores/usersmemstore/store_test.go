package usersmemstore_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo"
	"github.com/OreBoia/my-rest-app/core/repositories/usersrepo/stores/usersmemstore"
	"github.com/OreBoia/my-rest-app/sdk/logger"
)

func testLogger() *logger.Logger {
	return logger.NewDefault(logger.WithOutput(io.Discard))
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := usersmemstore.NewStore(testLogger())

	for i, name := range []string{"Mario Rossi", "Luigi Verdi", "Anna Bianchi"} {
		user, err := store.Create(ctx, usersrepo.NewUser{Name: name, Email: name + "@example.com"})
		if err != nil {
			t.Fatalf("creating user %q: %v", name, err)
		}
		if user.ID != i+1 {
			t.Errorf("user %q: got id %d, want %d", name, user.ID, i+1)
		}
	}
}

func TestCreateAfterDeleteContinuesFromMax(t *testing.T) {
	ctx := context.Background()
	store := usersmemstore.NewStoreWithUsers(testLogger(), []usersrepo.User{
		{ID: 1, Name: "Mario Rossi", Email: "mario@example.com"},
		{ID: 2, Name: "Luigi Verdi", Email: "luigi@example.com"},
	})

	if _, err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("deleting user 1: %v", err)
	}

	user, err := store.Create(ctx, usersrepo.NewUser{Name: "Anna Bianchi", Email: "anna@example.com"})
	if err != nil {
		t.Fatalf("creating user: %v", err)
	}
	if user.ID != 3 {
		t.Errorf("got id %d, want 3 (max existing + 1, not a reused slot)", user.ID)
	}
}

func TestDeleteReturnsRemovedUser(t *testing.T) {
	ctx := context.Background()
	store := usersmemstore.NewStoreWithUsers(testLogger(), []usersrepo.User{
		{ID: 1, Name: "Mario Rossi", Email: "mario@example.com"},
		{ID: 2, Name: "Luigi Verdi", Email: "luigi@example.com"},
	})

	user, err := store.Delete(ctx, 2)
	if err != nil {
		t.Fatalf("deleting user 2: %v", err)
	}
	if user.Name != "Luigi Verdi" {
		t.Errorf("got removed user %q, want %q", user.Name, "Luigi Verdi")
	}

	users, err := store.List(ctx)
	if err != nil {
		t.Fatalf("listing users: %v", err)
	}
	if len(users) != 1 || users[0].ID != 1 {
		t.Errorf("after delete, got %+v, want only user 1", users)
	}
}

func TestDeleteMissingLeavesCollectionIntact(t *testing.T) {
	ctx := context.Background()
	store := usersmemstore.NewStoreWithUsers(testLogger(), []usersrepo.User{
		{ID: 1, Name: "Mario Rossi", Email: "mario@example.com"},
	})

	_, err := store.Delete(ctx, 99)
	if !errors.Is(err, usersrepo.ErrNotFound) {
		t.Fatalf("got err %v, want ErrNotFound", err)
	}

	users, err := store.List(ctx)
	if err != nil {
		t.Fatalf("listing users: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("failed delete changed the collection: %+v", users)
	}
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := usersmemstore.NewStoreWithUsers(testLogger(), []usersrepo.User{
		{ID: 1, Name: "Mario Rossi", Email: "mario@example.com"},
	})

	first, _ := store.List(ctx)
	first[0].Name = "mutated"

	second, _ := store.List(ctx)
	if second[0].Name != "Mario Rossi" {
		t.Errorf("mutating a returned slice leaked into the store: %+v", second[0])
	}
}
