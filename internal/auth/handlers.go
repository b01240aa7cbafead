package auth

import (
	"context"

	"krushi-backend/internal/middleware"
	"krushi-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers holds dependencies for identity endpoints.
type Handlers struct {
	Service *Service
	Rdb     *redis.Client
	Config  middleware.SessionConfig
}

// LoginRequest body. Role is the tab the user picked on the login page and
// must match the stored account role.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register POST /api/users/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var in RegisterInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, ErrFieldsRequired.Error(), fiber.StatusBadRequest)
	}
	user, err := h.Service.Register(c.Context(), in)
	if err != nil {
		switch err {
		case ErrFieldsRequired, ErrInvalidEmail, ErrWeakPassword, ErrInvalidName, ErrInvalidRole:
			return response.Error(c, err.Error(), fiber.StatusBadRequest)
		case ErrDuplicateEmail:
			return response.Error(c, err.Error(), fiber.StatusConflict)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
		}
	}
	return response.SuccessCreated(c, "User registered successfully", fiber.Map{"user": user})
}

// Login POST /api/users/login — authenticate, regenerate session, set cookie.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Email and password are required", fiber.StatusBadRequest)
	}
	if req.Email == "" || req.Password == "" {
		return response.Error(c, "Email and password are required", fiber.StatusBadRequest)
	}

	user, err := h.Service.Login(c.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch err {
		case ErrInvalidCredentials, ErrRoleMismatch:
			return response.Error(c, err.Error(), fiber.StatusUnauthorized)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
		}
	}

	sessionID := middleware.RegenerateSessionID(c)
	middleware.SetSessionUser(c, middleware.SessionUser{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = sessionID
	c.Cookie(&cookie)

	return response.Success(c, "Login successful", fiber.Map{"user": user})
}

// Me GET /api/users/me — return current session user.
func (h *Handlers) Me(c *fiber.Ctx) error {
	m, ok := middleware.GetUser(c).(map[string]interface{})
	if !ok {
		return response.Unauthorized(c, ErrNotAuthenticated.Error())
	}
	return response.Success(c, "Authenticated", fiber.Map{"user": m})
}

// Logout DELETE /api/users/logout — delete session key, clear cookie.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	sessionID := middleware.GetSessionID(c)
	if sessionID != "" && h.Rdb != nil {
		_ = h.Rdb.Del(context.Background(), middleware.SessionRedisPrefix+sessionID).Err()
	}
	middleware.DestroySession(c)
	c.Locals("session_id", "")

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = ""
	cookie.MaxAge = -1
	c.Cookie(&cookie)

	return response.Success(c, "Logged out", nil)
}
