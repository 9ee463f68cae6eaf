package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
	"github.com/clubgrid/clubgrid-backend/internal/services"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) GetPrivacyPolicy(c *fiber.Ctx) error {
	return h.get(c, models.SlugPrivacyPolicy)
}

func (h *ContentHandler) UpdatePrivacyPolicy(c *fiber.Ctx) error {
	return h.upsert(c, models.SlugPrivacyPolicy)
}

func (h *ContentHandler) GetTermsAndConditions(c *fiber.Ctx) error {
	return h.get(c, models.SlugTermsAndConditions)
}

func (h *ContentHandler) UpdateTermsAndConditions(c *fiber.Ctx) error {
	return h.upsert(c, models.SlugTermsAndConditions)
}

func (h *ContentHandler) GetRuleBook(c *fiber.Ctx) error {
	return h.get(c, models.SlugRuleBook)
}

func (h *ContentHandler) UpdateRuleBook(c *fiber.Ctx) error {
	return h.upsert(c, models.SlugRuleBook)
}

func (h *ContentHandler) get(c *fiber.Ctx, slug string) error {
	page, err := h.contentService.Get(slug)
	if err != nil {
		if errors.Is(err, services.ErrUnknownContentSlug) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to fetch content page")
	}
	return c.JSON(fiber.Map{"success": true, "data": page})
}

func (h *ContentHandler) upsert(c *fiber.Ctx, slug string) error {
	var req dto.UpsertContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	page, err := h.contentService.Upsert(slug, &req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownContentSlug) {
			return notFound(c, err.Error())
		}
		return mutationError(c, err, "Failed to update content page")
	}
	return c.JSON(fiber.Map{"success": true, "data": page})
}
