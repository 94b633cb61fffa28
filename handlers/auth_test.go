package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterLoginProfile(t *testing.T) {
	r := newTestRouter(t)

	w := perform(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got %d, body %s", w.Code, w.Body.String())
	}

	w = perform(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
		User  struct {
			Roles []string `json:"roles"`
		} `json:"user"`
	}
	decodeBody(t, w, &body)
	if body.Token == "" {
		t.Fatal("login returned no token")
	}
	// Fresh users belong to no group: implicit customer.
	if len(body.User.Roles) != 1 || body.User.Roles[0] != "customer" {
		t.Errorf("new user roles = %v, want [customer]", body.User.Roles)
	}

	if w := perform(t, r, http.MethodGet, "/api/profile", body.Token, nil); w.Code != http.StatusOK {
		t.Errorf("profile with token: got %d, want 200", w.Code)
	}
	if w := perform(t, r, http.MethodGet, "/api/profile", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("profile without token: got %d, want 401", w.Code)
	}

	w = perform(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password login: got %d, want 401", w.Code)
	}
}
