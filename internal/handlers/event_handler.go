package handlers

import (
	"errors"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/services"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	filter := services.EventFilter{
		City: c.Query("city"),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit", "20"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	events, total, err := h.eventService.List(filter)
	if err != nil {
		return serverError(c, "Failed to fetch events")
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"data":          events,
		"total_records": total,
		"total_pages":   int(math.Ceil(float64(total) / float64(filter.Limit))),
		"page":          filter.Page,
		"limit":         filter.Limit,
	})
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid event ID")
	}

	event, err := h.eventService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to fetch event")
	}
	return c.JSON(event)
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrBadEventTime) {
			return badRequest(c, err.Error())
		}
		return mutationError(c, err, "Failed to create event")
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	event, err := h.eventService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrBadEventTime):
			return badRequest(c, err.Error())
		default:
			return mutationError(c, err, "Failed to update event")
		}
	}
	return c.JSON(event)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid event ID")
	}

	if err := h.eventService.Delete(id); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to delete event")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Event deleted"})
}
