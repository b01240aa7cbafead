package equipment

import (
	"strconv"

	"krushi-backend/internal/middleware"
	"krushi-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// Create POST /api/seller/equipment
func (h *Handlers) Create(c *fiber.Ctx) error {
	ownerID, _, _ := middleware.Actor(c)
	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, ErrFieldsRequired.Error(), fiber.StatusBadRequest)
	}
	eq, err := h.Service.Create(c.Context(), ownerID, in)
	if err != nil {
		if err == ErrFieldsRequired {
			return response.Error(c, err.Error(), fiber.StatusBadRequest)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.SuccessCreated(c, "Equipment added successfully", eq)
}

// ListOwn GET /api/seller/equipment
func (h *Handlers) ListOwn(c *fiber.Ctx) error {
	ownerID, _, _ := middleware.Actor(c)
	items, err := h.Service.ListByOwner(c.Context(), ownerID)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.Success(c, "Equipment fetched successfully", items)
}

// ListAvailable GET /api/farmer/equipment
func (h *Handlers) ListAvailable(c *fiber.Ctx) error {
	items, err := h.Service.ListAvailable(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.Success(c, "Equipment fetched successfully", items)
}

// Update PUT /api/seller/equipment/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	ownerID, _, _ := middleware.Actor(c)
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid equipment id", fiber.StatusBadRequest)
	}
	var in UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}
	eq, err := h.Service.Update(c.Context(), id, ownerID, in)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Equipment updated successfully", eq)
}

// SetStatus PATCH /api/seller/equipment/:id/status
func (h *Handlers) SetStatus(c *fiber.Ctx) error {
	ownerID, _, _ := middleware.Actor(c)
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid equipment id", fiber.StatusBadRequest)
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return response.Error(c, ErrInvalidStatus.Error(), fiber.StatusBadRequest)
	}
	eq, err := h.Service.SetStatus(c.Context(), id, ownerID, body.Status)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Equipment status updated successfully", eq)
}

func serviceError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return response.Error(c, err.Error(), fiber.StatusNotFound)
	case ErrForbidden:
		return response.Error(c, err.Error(), fiber.StatusForbidden)
	case ErrInvalidStatus, ErrFieldsRequired:
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(id), err
}
