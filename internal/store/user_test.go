package store

import (
	"testing"

	"bookhaven/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)

	user, err := s.CreateUser(&model.User{
		Username:     "alice",
		Nickname:     "Alice",
		PasswordHash: "hash",
		Role:         model.RoleHost,
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("Expected a generated id")
	}

	username := "alice"
	got, err := s.GetUser(&model.FindUser{Username: &username})
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Role != model.RoleHost {
		t.Fatalf("Unexpected user: %+v", got)
	}

	// Second lookup by id is served from the cache.
	cached, err := s.GetUser(&model.FindUser{ID: &user.ID})
	if err != nil {
		t.Fatal(err)
	}
	if cached == nil || cached.Username != "alice" {
		t.Fatalf("Unexpected cached user: %+v", cached)
	}

	role := model.RoleHost
	host, err := s.GetUser(&model.FindUser{Role: &role})
	if err != nil {
		t.Fatal(err)
	}
	if host == nil {
		t.Fatal("Expected the host user to be found by role")
	}
}

func TestRemoveUser(t *testing.T) {
	s := newTestStore(t)

	user, err := s.CreateUser(&model.User{
		Username:     "bob",
		PasswordHash: "hash",
		Role:         model.RoleUser,
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	// Prime the cache before removal.
	if _, err := s.GetUser(&model.FindUser{ID: &user.ID}); err != nil {
		t.Fatal(err)
	}

	if err := s.RemoveUser(user.ID); err != nil {
		t.Fatalf("Failed to remove user: %v", err)
	}

	got, err := s.GetUser(&model.FindUser{ID: &user.ID})
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("Expected user to be gone, got %+v", got)
	}
}
