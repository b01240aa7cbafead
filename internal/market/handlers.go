package market

import (
	"krushi-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// ListPrices GET /api/market/prices?crop=Rice
func (h *Handlers) ListPrices(c *fiber.Ctx) error {
	crop := c.Query("crop")
	var (
		prices interface{}
		err    error
	)
	if crop != "" {
		prices, err = h.Service.ListPricesByCrop(c.Context(), crop)
	} else {
		prices, err = h.Service.ListPrices(c.Context())
	}
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
	return response.Success(c, "Market prices fetched successfully", prices)
}
