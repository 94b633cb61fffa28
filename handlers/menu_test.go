package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

func TestMenuItemWritesAreManagerOnly(t *testing.T) {
	r := newTestRouter(t)
	_, customerToken := createUser(t, "alice")
	_, crewToken := createUser(t, "rider", models.RoleDeliveryCrew)
	_, managerToken := createUser(t, "boss", models.RoleManager)

	var category models.Category
	config.DB.FirstOrCreate(&category, models.Category{Slug: "mains", Title: "Mains"})

	payload := gin.H{"title": "Moussaka", "price": "11.50", "category_id": category.ID}

	for name, token := range map[string]string{"customer": customerToken, "crew": crewToken} {
		w := perform(t, r, http.MethodPost, "/api/menu-items", token, payload)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s create menu item: got %d, want 403", name, w.Code)
		}
	}
	var count int64
	config.DB.Model(&models.MenuItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("denied creates must not write, found %d items", count)
	}

	w := perform(t, r, http.MethodPost, "/api/menu-items", managerToken, payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("manager create menu item: got %d, body %s", w.Code, w.Body.String())
	}

	// All three roles can read.
	for name, token := range map[string]string{"customer": customerToken, "crew": crewToken, "manager": managerToken} {
		w := perform(t, r, http.MethodGet, "/api/menu-items", token, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s list menu items: got %d, want 200", name, w.Code)
		}
	}
}

func TestMenuItemFilters(t *testing.T) {
	r := newTestRouter(t)
	_, token := createUser(t, "alice")
	seedMenuItem(t, "Greek Salad", "7.50")
	seedMenuItem(t, "Lemon Cake", "5.00")
	seedMenuItem(t, "Grilled Fish", "14.00")

	var list struct {
		Count int `json:"count"`
		Items []models.MenuItem `json:"menu_items"`
	}

	decodeBody(t, perform(t, r, http.MethodGet, "/api/menu-items?search=Grilled", token, nil), &list)
	if list.Count != 1 {
		t.Errorf("search: got %d items, want 1", list.Count)
	}

	decodeBody(t, perform(t, r, http.MethodGet, "/api/menu-items?min_price=5.50&max_price=10", token, nil), &list)
	if list.Count != 1 || list.Items[0].Title != "Greek Salad" {
		t.Errorf("price range: got %+v", list.Items)
	}

	decodeBody(t, perform(t, r, http.MethodGet, "/api/menu-items?ordering=-price", token, nil), &list)
	if list.Count != 3 || list.Items[0].Title != "Grilled Fish" {
		t.Errorf("ordering by -price: got %+v", list.Items)
	}
}

func TestDeleteCategoryCascades(t *testing.T) {
	r := newTestRouter(t)
	_, managerToken := createUser(t, "boss", models.RoleManager)
	item := seedMenuItem(t, "Greek Salad", "7.50")

	var category models.Category
	config.DB.First(&category, item.CategoryID)

	w := perform(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), managerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete category: got %d", w.Code)
	}

	var count int64
	config.DB.Model(&models.MenuItem{}).Count(&count)
	if count != 0 {
		t.Errorf("menu items must cascade with their category, %d left", count)
	}
}
