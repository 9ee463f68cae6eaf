package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/storage"
)

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload accepts a data URI and returns the stored object's public URL.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	var req dto.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	prefix := req.Folder
	if prefix == "" {
		prefix = "uploads"
	}

	url, err := h.uploader.Upload(c.Context(), prefix, req.File)
	if err != nil {
		if errors.Is(err, storage.ErrUploadFailed) {
			return serverError(c, err.Error())
		}
		return serverError(c, "Failed to store file")
	}
	if url == "" {
		return badRequest(c, "File must be a base64 data URI")
	}

	return c.JSON(fiber.Map{"success": true, "url": url})
}
