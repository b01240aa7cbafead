package admin

import (
	"krushi-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login POST /api/admin/login — credential check only, no session issued.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil {
		return response.Error(c, ErrCredsRequired.Error(), fiber.StatusBadRequest)
	}
	if err := h.Service.Verify(c.Context(), creds.Username, creds.Password); err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Admin login successful", fiber.Map{"admin": fiber.Map{"username": creds.Username}})
}

// Records POST /api/admin/records — dump all allow-listed tables.
func (h *Handlers) Records(c *fiber.Ctx) error {
	var creds credentials
	if err := c.BodyParser(&creds); err != nil {
		return response.Error(c, ErrCredsRequired.Error(), fiber.StatusBadRequest)
	}
	records, err := h.Service.ListAllTables(c.Context(), creds.Username, creds.Password)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Records fetched successfully", records)
}

// Delete POST /api/admin/delete — remove one row from an allow-listed table.
func (h *Handlers) Delete(c *fiber.Ctx) error {
	var body struct {
		credentials
		TableName string `json:"tableName"`
		RecordID  uint   `json:"recordId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, ErrCredsRequired.Error(), fiber.StatusBadRequest)
	}
	if body.TableName == "" || body.RecordID == 0 {
		return response.Error(c, "Table name and record ID are required", fiber.StatusBadRequest)
	}
	if err := h.Service.DeleteRecord(c.Context(), body.Username, body.Password, body.TableName, body.RecordID); err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Record deleted successfully", nil)
}

func serviceError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrUnauthorized:
		return response.Error(c, err.Error(), fiber.StatusUnauthorized)
	case ErrInvalidTable:
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	case ErrRecordNotFound:
		return response.Error(c, err.Error(), fiber.StatusNotFound)
	case ErrCredsRequired:
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
}
