package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/services"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) CreateExchange(c *fiber.Ctx) error {
	var req dto.CreateExchangeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	exchange, err := h.activityService.CreateExchange(&req)
	if err != nil {
		if errors.Is(err, services.ErrMemberRefInvalid) {
			return badRequest(c, err.Error())
		}
		return mutationError(c, err, "Failed to create exchange")
	}
	return c.Status(fiber.StatusCreated).JSON(exchange)
}

func (h *ActivityHandler) ListExchanges(c *fiber.Ctx) error {
	exchanges, err := h.activityService.ListExchanges()
	if err != nil {
		return serverError(c, "Failed to fetch exchanges")
	}
	return listOK(c, exchanges)
}

func (h *ActivityHandler) TotalRevenue(c *fiber.Ctx) error {
	total, err := h.activityService.TotalRevenue()
	if err != nil {
		return serverError(c, "Failed to compute total revenue")
	}
	return c.JSON(fiber.Map{"success": true, "total": total})
}

func (h *ActivityHandler) CreateReference(c *fiber.Ctx) error {
	var req dto.CreateReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ref, err := h.activityService.CreateReference(&req)
	if err != nil {
		if errors.Is(err, services.ErrMemberRefInvalid) {
			return badRequest(c, err.Error())
		}
		return mutationError(c, err, "Failed to create reference pass")
	}
	return c.Status(fiber.StatusCreated).JSON(ref)
}

func (h *ActivityHandler) ListReferences(c *fiber.Ctx) error {
	refs, err := h.activityService.ListReferences()
	if err != nil {
		return serverError(c, "Failed to fetch reference passes")
	}
	return listOK(c, refs)
}

func (h *ActivityHandler) TotalPasses(c *fiber.Ctx) error {
	total, err := h.activityService.TotalPasses()
	if err != nil {
		return serverError(c, "Failed to count reference passes")
	}
	return c.JSON(dto.TotalResponse{Success: true, Total: float64(total)})
}

func (h *ActivityHandler) CreatePersonalMeeting(c *fiber.Ctx) error {
	var req dto.CreatePersonalMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	meeting, err := h.activityService.CreatePersonalMeeting(&req)
	if err != nil {
		if errors.Is(err, services.ErrMemberRefInvalid) {
			return badRequest(c, err.Error())
		}
		return mutationError(c, err, "Failed to create one-to-one")
	}
	return c.Status(fiber.StatusCreated).JSON(meeting)
}

func (h *ActivityHandler) ListPersonalMeetings(c *fiber.Ctx) error {
	meetings, err := h.activityService.ListPersonalMeetings()
	if err != nil {
		return serverError(c, "Failed to fetch one-to-ones")
	}
	return listOK(c, meetings)
}

func (h *ActivityHandler) TotalPersonalMeetings(c *fiber.Ctx) error {
	total, err := h.activityService.TotalPersonalMeetings()
	if err != nil {
		return serverError(c, "Failed to count one-to-ones")
	}
	return c.JSON(dto.TotalResponse{Success: true, Total: float64(total)})
}
