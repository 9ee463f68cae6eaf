package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/services"
)

type MeetingHandler struct {
	meetingService *services.MeetingService
}

func NewMeetingHandler(meetingService *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

func (h *MeetingHandler) List(c *fiber.Ctx) error {
	filter := services.MeetingFilter{
		Status: c.Query("status"),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit", "20"))

	if v := c.Query("cityId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "Invalid cityId filter")
		}
		filter.CityID = &id
	}
	if v := c.Query("chapterId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return badRequest(c, "Invalid chapterId filter")
		}
		filter.ChapterID = &id
	}

	resp, err := h.meetingService.List(filter)
	if err != nil {
		return serverError(c, "Failed to fetch meetings")
	}
	return c.JSON(resp)
}

func (h *MeetingHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid meeting ID")
	}

	meeting, err := h.meetingService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrMeetingNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to fetch meeting")
	}
	return c.JSON(meeting)
}

func (h *MeetingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	meeting, err := h.meetingService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrBadMeetingDate) {
			return badRequest(c, err.Error())
		}
		return mutationError(c, err, "Failed to create meeting")
	}
	return c.Status(fiber.StatusCreated).JSON(meeting)
}

func (h *MeetingHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid meeting ID")
	}

	var req dto.UpdateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	meeting, err := h.meetingService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMeetingNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrBadMeetingDate):
			return badRequest(c, err.Error())
		default:
			return mutationError(c, err, "Failed to update meeting")
		}
	}
	return c.JSON(meeting)
}

func (h *MeetingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid meeting ID")
	}

	if err := h.meetingService.Delete(id); err != nil {
		if errors.Is(err, services.ErrMeetingNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to delete meeting")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Meeting deleted"})
}

func (h *MeetingHandler) Upcoming(c *fiber.Ctx) error {
	meetings, err := h.meetingService.Upcoming(time.Now())
	if err != nil {
		return serverError(c, "Failed to fetch upcoming meetings")
	}
	return listOK(c, meetings)
}

// QRCode renders the meeting check-in QR code as a PNG.
func (h *MeetingHandler) QRCode(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid meeting ID")
	}

	payload, err := h.meetingService.QRPayload(id)
	if err != nil {
		if errors.Is(err, services.ErrMeetingNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to build QR code")
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return serverError(c, "Failed to build QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *MeetingHandler) RecordAttendance(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	attendance, err := h.meetingService.RecordAttendance(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateCheckin):
			return conflict(c, err.Error())
		case errors.Is(err, services.ErrMeetingNotFound), errors.Is(err, services.ErrAttendeeNotFound):
			return notFound(c, err.Error())
		default:
			return mutationError(c, err, "Failed to record attendance")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(attendance)
}

func (h *MeetingHandler) TotalAttendances(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid meeting ID")
	}

	total, err := h.meetingService.TotalAttendances(id)
	if err != nil {
		if errors.Is(err, services.ErrMeetingNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to count attendances")
	}
	return c.JSON(dto.TotalResponse{Success: true, Total: float64(total)})
}

// ExportAttendance streams the attendance sheet as CSV. A deleted meeting
// yields 404, never stale rows.
func (h *MeetingHandler) ExportAttendance(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid meeting ID")
	}

	data, filename, err := h.meetingService.ExportAttendanceCSV(id)
	if err != nil {
		if errors.Is(err, services.ErrMeetingNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to export attendance")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
