package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

func TestGroupMembership(t *testing.T) {
	r := newTestRouter(t)
	_, managerToken := createUser(t, "boss", models.RoleManager)
	alice, _ := createUser(t, "alice")

	// Add a missing user: 404.
	w := perform(t, r, http.MethodPost, "/api/groups/delivery-crew/users", managerToken, gin.H{"user_id": 99999})
	if w.Code != http.StatusNotFound {
		t.Errorf("add missing user: got %d, want 404", w.Code)
	}

	// Promote alice to delivery crew.
	w = perform(t, r, http.MethodPost, "/api/groups/delivery-crew/users", managerToken, gin.H{"user_id": alice.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("add member: got %d, body %s", w.Code, w.Body.String())
	}

	var list struct {
		Count int `json:"count"`
		Users []struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"users"`
	}
	decodeBody(t, perform(t, r, http.MethodGet, "/api/groups/delivery-crew/users", managerToken, nil), &list)
	if list.Count != 1 || list.Users[0].Username != "alice" {
		t.Fatalf("crew list = %+v", list)
	}

	// Remove, then remove again: the second call is a no-op success.
	path := fmt.Sprintf("/api/groups/delivery-crew/users/%d", alice.ID)
	for i := 0; i < 2; i++ {
		if w := perform(t, r, http.MethodDelete, path, managerToken, nil); w.Code != http.StatusOK {
			t.Errorf("remove member (call %d): got %d, want 200", i+1, w.Code)
		}
	}
	if w := perform(t, r, http.MethodDelete, "/api/groups/delivery-crew/users/99999", managerToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("remove missing user: got %d, want 404", w.Code)
	}
}

func TestUserDirectoryDefaultsToCustomer(t *testing.T) {
	r := newTestRouter(t)
	_, managerToken := createUser(t, "boss", models.RoleManager)
	createUser(t, "alice")
	createUser(t, "rider", models.RoleDeliveryCrew)

	var list struct {
		Users []struct {
			Username string   `json:"username"`
			Roles    []string `json:"roles"`
		} `json:"users"`
	}
	decodeBody(t, perform(t, r, http.MethodGet, "/api/groups/users", managerToken, nil), &list)

	roles := map[string][]string{}
	for _, u := range list.Users {
		roles[u.Username] = u.Roles
	}
	if got := roles["alice"]; len(got) != 1 || got[0] != models.RoleCustomer {
		t.Errorf("alice roles = %v, want [customer]", got)
	}
	if got := roles["rider"]; len(got) != 1 || got[0] != models.RoleDeliveryCrew {
		t.Errorf("rider roles = %v, want [deliver_crew]", got)
	}
	if got := roles["boss"]; len(got) != 1 || got[0] != models.RoleManager {
		t.Errorf("boss roles = %v, want [manager]", got)
	}
}

func TestGroupEndpointsAreManagerOnly(t *testing.T) {
	r := newTestRouter(t)
	_, customerToken := createUser(t, "alice")
	_, crewToken := createUser(t, "rider", models.RoleDeliveryCrew)

	paths := []string{
		"/api/groups/manager/users",
		"/api/groups/delivery-crew/users",
		"/api/groups/users",
	}
	for name, token := range map[string]string{"customer": customerToken, "crew": crewToken} {
		for _, p := range paths {
			if w := perform(t, r, http.MethodGet, p, token, nil); w.Code != http.StatusForbidden {
				t.Errorf("%s GET %s: got %d, want 403", name, p, w.Code)
			}
		}
	}
}
