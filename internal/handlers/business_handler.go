package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/services"
	"github.com/clubgrid/clubgrid-backend/internal/storage"
)

type BusinessHandler struct {
	businessService *services.BusinessService
}

func NewBusinessHandler(businessService *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

func (h *BusinessHandler) List(c *fiber.Ctx) error {
	businesses, err := h.businessService.List()
	if err != nil {
		return serverError(c, "Failed to fetch businesses")
	}
	return listOK(c, businesses)
}

func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid business ID")
	}

	business, err := h.businessService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to fetch business")
	}
	return c.JSON(business)
}

func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	business, err := h.businessService.Create(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBusinessExists):
			return conflict(c, err.Error())
		case errors.Is(err, services.ErrUserRefInvalid):
			return badRequest(c, err.Error())
		case errors.Is(err, storage.ErrUploadFailed):
			return serverError(c, err.Error())
		default:
			return mutationError(c, err, "Failed to create business")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(business)
}

func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid business ID")
	}

	var req dto.UpdateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	business, err := h.businessService.Update(c.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBusinessNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, storage.ErrUploadFailed):
			return serverError(c, err.Error())
		default:
			return mutationError(c, err, "Failed to update business")
		}
	}
	return c.JSON(business)
}

func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid business ID")
	}

	if err := h.businessService.Delete(id); err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to delete business")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Business deleted"})
}

// --- Business service offerings ---

func (h *BusinessHandler) ListServices(c *fiber.Ctx) error {
	offerings, err := h.businessService.ListServices()
	if err != nil {
		return serverError(c, "Failed to fetch business services")
	}
	return listOK(c, offerings)
}

func (h *BusinessHandler) ListServicesByBusiness(c *fiber.Ctx) error {
	businessID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid business ID")
	}

	offerings, err := h.businessService.ListServicesByBusiness(businessID)
	if err != nil {
		return serverError(c, "Failed to fetch business services")
	}
	return listOK(c, offerings)
}

func (h *BusinessHandler) CreateService(c *fiber.Ctx) error {
	var req dto.CreateBusinessServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	offering, err := h.businessService.CreateService(&req)
	if err != nil {
		if errors.Is(err, services.ErrBusinessNotFound) {
			return notFound(c, err.Error())
		}
		return mutationError(c, err, "Failed to create business service")
	}
	return c.Status(fiber.StatusCreated).JSON(offering)
}

func (h *BusinessHandler) UpdateService(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid business service ID")
	}

	var req dto.UpdateBusinessServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	offering, err := h.businessService.UpdateService(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrOfferingNotFound) {
			return notFound(c, err.Error())
		}
		return mutationError(c, err, "Failed to update business service")
	}
	return c.JSON(offering)
}

func (h *BusinessHandler) DeleteService(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid business service ID")
	}

	if err := h.businessService.DeleteService(id); err != nil {
		if errors.Is(err, services.ErrOfferingNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to delete business service")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Business service deleted"})
}
