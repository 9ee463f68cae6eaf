package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/services"
)

type CityHandler struct {
	cityService *services.CityService
}

func NewCityHandler(cityService *services.CityService) *CityHandler {
	return &CityHandler{cityService: cityService}
}

func (h *CityHandler) List(c *fiber.Ctx) error {
	cities, err := h.cityService.List()
	if err != nil {
		return serverError(c, "Failed to fetch cities")
	}
	return listOK(c, cities)
}

func (h *CityHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid city ID")
	}

	city, err := h.cityService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrCityNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to fetch city")
	}
	return c.JSON(city)
}

func (h *CityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	city, err := h.cityService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrCityNameTaken) {
			return conflict(c, err.Error())
		}
		return mutationError(c, err, "Failed to create city")
	}
	return c.Status(fiber.StatusCreated).JSON(city)
}

func (h *CityHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid city ID")
	}

	var req dto.UpdateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	city, err := h.cityService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCityNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrCityNameTaken):
			return conflict(c, err.Error())
		default:
			return mutationError(c, err, "Failed to update city")
		}
	}
	return c.JSON(city)
}

func (h *CityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid city ID")
	}

	if err := h.cityService.Delete(id); err != nil {
		if errors.Is(err, services.ErrCityNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to delete city")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "City deleted"})
}
