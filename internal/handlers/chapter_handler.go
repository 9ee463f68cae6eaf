package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/services"
)

type ChapterHandler struct {
	chapterService *services.ChapterService
}

func NewChapterHandler(chapterService *services.ChapterService) *ChapterHandler {
	return &ChapterHandler{chapterService: chapterService}
}

func (h *ChapterHandler) List(c *fiber.Ctx) error {
	chapters, err := h.chapterService.List()
	if err != nil {
		return serverError(c, "Failed to fetch chapters")
	}
	return listOK(c, chapters)
}

func (h *ChapterHandler) ListByCity(c *fiber.Ctx) error {
	cityID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid city ID")
	}

	chapters, err := h.chapterService.ListByCity(cityID)
	if err != nil {
		return serverError(c, "Failed to fetch chapters")
	}
	return listOK(c, chapters)
}

func (h *ChapterHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid chapter ID")
	}

	chapter, err := h.chapterService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrChapterNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to fetch chapter")
	}
	return c.JSON(chapter)
}

func (h *ChapterHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	chapter, err := h.chapterService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrCityRefInvalid) {
			return badRequest(c, err.Error())
		}
		return mutationError(c, err, "Failed to create chapter")
	}
	return c.Status(fiber.StatusCreated).JSON(chapter)
}

func (h *ChapterHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid chapter ID")
	}

	var req dto.UpdateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	chapter, err := h.chapterService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChapterNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrCityRefInvalid):
			return badRequest(c, err.Error())
		default:
			return mutationError(c, err, "Failed to update chapter")
		}
	}
	return c.JSON(chapter)
}

func (h *ChapterHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid chapter ID")
	}

	if err := h.chapterService.Delete(id); err != nil {
		if errors.Is(err, services.ErrChapterNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to delete chapter")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Chapter deleted"})
}
