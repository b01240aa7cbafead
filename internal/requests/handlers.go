package requests

import (
	"strconv"

	"krushi-backend/internal/domain"
	"krushi-backend/internal/middleware"
	"krushi-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// BookEquipment POST /api/farmer/equipment/book
func (h *Handlers) BookEquipment(c *fiber.Ctx) error {
	farmerID, _, _ := middleware.Actor(c)
	var body struct {
		EquipmentID uint    `json:"equipment_id"`
		Slot        string  `json:"slot"`
		Price       float64 `json:"price"`
	}
	if err := c.BodyParser(&body); err != nil || body.EquipmentID == 0 {
		return response.Error(c, "equipment_id and slot are required", fiber.StatusBadRequest)
	}
	booking, err := h.Service.RequestBooking(c.Context(), body.EquipmentID, farmerID, body.Slot, body.Price)
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Booking request sent", booking)
}

// Apply POST /api/labourer/jobs/:id/apply
func (h *Handlers) Apply(c *fiber.Ctx) error {
	labourerID, _, _ := middleware.Actor(c)
	jobID, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, "Invalid job id", fiber.StatusBadRequest)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Error(c, ErrMessageRequired.Error(), fiber.StatusBadRequest)
	}
	app, err := h.Service.RequestApplication(c.Context(), jobID, labourerID, body.Message)
	if err != nil {
		return serviceError(c, err)
	}
	return response.SuccessCreated(c, "Application submitted", app)
}

// AcceptBooking PATCH /api/seller/bookings/:id/accept
func (h *Handlers) AcceptBooking(c *fiber.Ctx) error {
	return h.decideBooking(c, domain.RequestAccepted, "Booking accepted successfully")
}

// RejectBooking PATCH /api/seller/bookings/:id/reject
func (h *Handlers) RejectBooking(c *fiber.Ctx) error {
	return h.decideBooking(c, domain.RequestRejected, "Booking rejected successfully")
}

func (h *Handlers) decideBooking(c *fiber.Ctx, outcome, message string) error {
	actorID, _, _ := middleware.Actor(c)
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, "Invalid booking id", fiber.StatusBadRequest)
	}
	booking, err := h.Service.DecideBooking(c.Context(), id, actorID, outcome)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, message, booking)
}

// AcceptApplication PATCH /api/farmer/applications/:id/accept
func (h *Handlers) AcceptApplication(c *fiber.Ctx) error {
	return h.decideApplication(c, domain.RequestAccepted, "Application accepted successfully")
}

// RejectApplication PATCH /api/farmer/applications/:id/reject
func (h *Handlers) RejectApplication(c *fiber.Ctx) error {
	return h.decideApplication(c, domain.RequestRejected, "Application rejected successfully")
}

func (h *Handlers) decideApplication(c *fiber.Ctx, outcome, message string) error {
	actorID, _, _ := middleware.Actor(c)
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, "Invalid application id", fiber.StatusBadRequest)
	}
	app, err := h.Service.DecideApplication(c.Context(), id, actorID, outcome)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, message, app)
}

// SellerBookings GET /api/seller/bookings
func (h *Handlers) SellerBookings(c *fiber.Ctx) error {
	sellerID, _, _ := middleware.Actor(c)
	views, err := h.Service.ListBookingsForSeller(c.Context(), sellerID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Bookings fetched successfully", views)
}

// FarmerBookings GET /api/farmer/bookings
func (h *Handlers) FarmerBookings(c *fiber.Ctx) error {
	farmerID, _, _ := middleware.Actor(c)
	views, err := h.Service.ListBookingsForFarmer(c.Context(), farmerID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Bookings fetched successfully", views)
}

// JobApplications GET /api/farmer/applications/:jobId
func (h *Handlers) JobApplications(c *fiber.Ctx) error {
	farmerID, _, _ := middleware.Actor(c)
	jobID, err := paramID(c, "jobId")
	if err != nil {
		return response.Error(c, "Invalid job id", fiber.StatusBadRequest)
	}
	views, err := h.Service.ListApplicationsForJob(c.Context(), jobID, farmerID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Applications fetched successfully", views)
}

// LabourerApplications GET /api/labourer/applications
func (h *Handlers) LabourerApplications(c *fiber.Ctx) error {
	labourerID, _, _ := middleware.Actor(c)
	views, err := h.Service.ListApplicationsForLabourer(c.Context(), labourerID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "Applications fetched successfully", views)
}

func serviceError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrBookingNotFound, ErrApplicationNotFound, ErrEquipmentNotFound, ErrJobNotFound:
		return response.Error(c, err.Error(), fiber.StatusNotFound)
	case ErrForbidden:
		return response.Error(c, err.Error(), fiber.StatusForbidden)
	case ErrAlreadyDecided, ErrDuplicateApplication, ErrJobNotOpen, ErrEquipmentPaused:
		return response.Error(c, err.Error(), fiber.StatusConflict)
	case ErrInvalidOutcome, ErrSlotRequired, ErrMessageRequired:
		return response.Error(c, err.Error(), fiber.StatusBadRequest)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError)
	}
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	return uint(id), err
}
