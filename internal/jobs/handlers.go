package jobs

import (
	"strconv"

	"krushi-backend/internal/middleware"
	"krushi-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// Create POST /api/farmer/jobs
func (h *Handlers) Create(c *fiber.Ctx) error {
	farmerID, _, _ := middleware.Actor(c)
	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, ErrFieldsRequired.Error(), fiber.StatusBadRequest)
	}
	job, err := h.Service.Create(c.Context(), farmerID, in)
	if err != nil {
		if err == ErrFieldsRequired {
			return response.Error(c, err.Error(), fiber.StatusBadRequest)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.SuccessCreated(c, "Job posted successfully", job)
}

// ListOpen GET /api/labourer/jobs
func (h *Handlers) ListOpen(c *fiber.Ctx) error {
	items, err := h.Service.ListOpen(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.Success(c, "Jobs fetched successfully", items)
}

// ListOpenBySkill GET /api/labourer/jobs/skill/:skill
func (h *Handlers) ListOpenBySkill(c *fiber.Ctx) error {
	skill := c.Params("skill")
	if skill == "" {
		return response.Error(c, "Skill is required", fiber.StatusBadRequest)
	}
	items, err := h.Service.ListOpenBySkill(c.Context(), skill)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.Success(c, "Jobs fetched successfully", items)
}

// ListOwn GET /api/farmer/jobs
func (h *Handlers) ListOwn(c *fiber.Ctx) error {
	farmerID, _, _ := middleware.Actor(c)
	items, err := h.Service.ListByFarmer(c.Context(), farmerID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.Success(c, "Jobs fetched successfully", items)
}

// Close PATCH /api/farmer/jobs/:id/close
func (h *Handlers) Close(c *fiber.Ctx) error {
	farmerID, _, _ := middleware.Actor(c)
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.Error(c, "Invalid job id", fiber.StatusBadRequest)
	}
	job, err := h.Service.Close(c.Context(), uint(id), farmerID)
	if err != nil {
		switch err {
		case ErrNotFound:
			return response.Error(c, err.Error(), fiber.StatusNotFound)
		case ErrForbidden:
			return response.Error(c, err.Error(), fiber.StatusForbidden)
		case ErrAlreadyClosed:
			return response.Error(c, err.Error(), fiber.StatusConflict)
		default:
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
		}
	}
	return response.Success(c, "Job closed successfully", job)
}
