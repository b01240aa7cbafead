package profiles

import (
	"strconv"

	"krushi-backend/internal/middleware"
	"krushi-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// Upsert POST /api/labourer/profile
func (h *Handlers) Upsert(c *fiber.Ctx) error {
	userID, _, _ := middleware.Actor(c)
	var in UpsertInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	profile, err := h.Service.Upsert(c.Context(), userID, in)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.Success(c, "Profile saved successfully", profile)
}

// Get GET /api/labourer/profile/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.Error(c, "Invalid user id", fiber.StatusBadRequest)
	}
	profile, err := h.Service.Get(c.Context(), uint(id))
	if err != nil {
		if err == ErrProfileNotFound {
			return response.Error(c, err.Error(), fiber.StatusNotFound)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.Success(c, "Profile fetched successfully", profile)
}
