package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookhaven/internal/http/request"
	"bookhaven/internal/model"

	"github.com/gorilla/mux"
)

func requestAs(r *http.Request, userID, username, role string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, request.UserIDContextKey, userID)
	ctx = context.WithValue(ctx, request.UserNameContextKey, username)
	ctx = context.WithValue(ctx, request.UserRolesContextKey, role)
	return r.WithContext(ctx)
}

func TestDeleteUserHandler(t *testing.T) {
	h := newTestHandler(t)

	host, err := h.store.CreateUser(&model.User{Username: "host", PasswordHash: "x", Role: model.RoleHost})
	if err != nil {
		t.Fatal(err)
	}
	guest, err := h.store.CreateUser(&model.User{Username: "guest", PasswordHash: "x", Role: model.RoleUser})
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/users/2", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "2"})
	r = requestAs(r, "1", host.Username, string(model.RoleHost))
	w := httptest.NewRecorder()

	h.deleteUser(w, r)

	if w.Result().StatusCode != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Result().StatusCode)
	}

	removed, err := h.store.GetUser(&model.FindUser{ID: &guest.ID})
	if err != nil {
		t.Fatal(err)
	}
	if removed != nil {
		t.Fatalf("Expected user to be gone, got %+v", removed)
	}
}

func TestDeleteUserHandlerRequiresHost(t *testing.T) {
	h := newTestHandler(t)

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/users/1", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	r = requestAs(r, "2", "guest", string(model.RoleUser))
	w := httptest.NewRecorder()

	h.deleteUser(w, r)

	if w.Result().StatusCode != http.StatusForbidden {
		t.Fatalf("Expected status 403, got %d", w.Result().StatusCode)
	}
}

func TestDeleteUserHandlerRejectsSelf(t *testing.T) {
	h := newTestHandler(t)

	if _, err := h.store.CreateUser(&model.User{Username: "host", PasswordHash: "x", Role: model.RoleHost}); err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(http.MethodDelete, "/api/v1/users/1", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	r = requestAs(r, "1", "host", string(model.RoleHost))
	w := httptest.NewRecorder()

	h.deleteUser(w, r)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Result().StatusCode)
	}
}
