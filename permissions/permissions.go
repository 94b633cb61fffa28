package permissions

import (
	"net/http"

	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

// Map declares, per HTTP method, which roles may call an endpoint.
// Semantics:
//   - a nil Map allows everything (fully public endpoint);
//   - an empty Map is NOT the same thing: it allows nothing;
//   - a method missing from the Map is denied (fail-closed);
//   - the sentinel role "any" allows all callers, authenticated or not.
type Map map[string][]string

// Allowed is the pure authorization predicate. The caller passes the
// principal's normalized role set, or nil for an unauthenticated caller.
func Allowed(m Map, method string, roles []string) bool {
	if m == nil {
		return true
	}
	for _, allowed := range m[method] {
		if allowed == models.RoleAny {
			return true
		}
		for _, r := range roles {
			if r == allowed {
				return true
			}
		}
	}
	return false
}

// Normalize maps an authenticated principal's group names to its role
// set: no groups means customer. Never call this for unauthenticated
// callers; they have no roles at all.
func Normalize(groups []string) []string {
	if len(groups) == 0 {
		return []string{models.RoleCustomer}
	}
	return groups
}

// Require returns a gin middleware enforcing m before the handler runs.
// It reads the role set stashed in the context by the auth middleware.
func Require(m Map) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roles []string
		if v, ok := c.Get("roles"); ok {
			roles = v.([]string)
		}
		if !Allowed(m, c.Request.Method, roles) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}
