package middleware

import (
	"krushi-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// RequireAuth ensures a user is in the session. Returns 401 with the
// standard error format if not.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals(userLocal)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}

// RequireRole ensures the session user has the given role. The actor's
// role comes from the session, never from the request.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, r, ok := Actor(c)
		if !ok || id == 0 {
			return response.Unauthorized(c, "Unauthorized")
		}
		if r != role {
			return response.Error(c, "User is Forbidden from performing this action", fiber.StatusForbidden)
		}
		return c.Next()
	}
}

// GetUser returns the session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// Actor extracts the authenticated (id, role) pair from the session user.
// ok is false when no user is logged in or the session shape is invalid.
func Actor(c *fiber.Ctx) (uint, string, bool) {
	m, ok := c.Locals(userLocal).(map[string]interface{})
	if !ok {
		return 0, "", false
	}
	role, _ := m["role"].(string)
	switch id := m["user_id"].(type) {
	case float64:
		return uint(id), role, true
	case uint:
		return id, role, true
	case int:
		return uint(id), role, true
	}
	return 0, "", false
}
