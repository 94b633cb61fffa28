package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var dbCounter int64

// newTestRouter gives each test its own in-memory database and a router
// with the full middleware and permission wiring.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	n := atomic.AddInt64(&dbCounter, 1)
	db, err := config.OpenDB(fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", n))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// createUser creates a user in the given groups and returns it with a
// valid token. No groups means the user is a plain customer.
func createUser(t *testing.T, username string, groups ...string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	for _, name := range groups {
		var group models.Group
		if err := config.DB.Where("name = ?", name).First(&group).Error; err != nil {
			t.Fatalf("group %s missing: %v", name, err)
		}
		if err := config.DB.Model(&user).Association("Groups").Append(&group); err != nil {
			t.Fatalf("add %s to %s: %v", username, name, err)
		}
	}
	token, err := middleware.GenerateToken(&user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

// seedMenuItem creates a category (if needed) and a menu item at the
// given price.
func seedMenuItem(t *testing.T, title, price string) models.MenuItem {
	t.Helper()
	var category models.Category
	if err := config.DB.FirstOrCreate(&category, models.Category{Slug: "mains", Title: "Mains"}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("bad price %s: %v", price, err)
	}
	item := models.MenuItem{Title: title, Price: p, CategoryID: category.ID}
	if err := config.DB.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return item
}

func perform(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// addToCart puts quantity of item into the user's cart via the API.
func addToCart(t *testing.T, r http.Handler, token string, itemID uint, quantity int) {
	t.Helper()
	w := perform(t, r, http.MethodPost, "/api/cart/menu-items", token, gin.H{
		"menuitem_id": itemID,
		"quantity":    quantity,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add to cart: got %d, body %s", w.Code, w.Body.String())
	}
}
