package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) AttendanceReport(c *fiber.Ctx) error {
	report, err := h.reportService.AttendanceReport(parseReportQuery(c))
	if err != nil {
		return serverError(c, "Failed to build attendance report")
	}
	return c.JSON(report)
}

func (h *ReportHandler) ChapterReport(c *fiber.Ctx) error {
	report, err := h.reportService.ChapterReport(parseReportQuery(c))
	if err != nil {
		return serverError(c, "Failed to build chapter report")
	}
	return c.JSON(report)
}

func parseReportQuery(c *fiber.Ctx) dto.ReportQuery {
	q := dto.ReportQuery{
		DateRange: c.Query("dateRange"),
		City:      c.Query("city"),
		Chapter:   c.Query("chapter"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	q.Page, _ = strconv.Atoi(c.Query("page", "1"))
	q.Limit, _ = strconv.Atoi(c.Query("limit", "20"))
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
	return q
}
