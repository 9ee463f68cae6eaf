package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/clubgrid/clubgrid-backend/internal/config"
	"github.com/clubgrid/clubgrid-backend/internal/handlers"
	"github.com/clubgrid/clubgrid-backend/internal/middleware"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	City     *handlers.CityHandler
	Chapter  *handlers.ChapterHandler
	User     *handlers.UserHandler
	Business *handlers.BusinessHandler
	Meeting  *handlers.MeetingHandler
	Event    *handlers.EventHandler
	Activity *handlers.ActivityHandler
	Content  *handlers.ContentHandler
	Report   *handlers.ReportHandler
	Upload   *handlers.UploadHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	api.Get("/health", h.Health.Check)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Legal pages are readable without a session
	api.Get("/privacy-policy", h.Content.GetPrivacyPolicy)
	api.Get("/terms-and-conditions", h.Content.GetTermsAndConditions)
	api.Get("/rule-book", h.Content.GetRuleBook)

	// Auth routes get a stricter rate limit: 10 req/min per IP.
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)

	// Everything below requires a valid JWT
	jwt := middleware.JWTProtected(cfg)
	admin := middleware.AdminRequired(db, cfg)

	// Cities
	api.Get("/cities", jwt, h.City.List)
	api.Get("/cities/:id", jwt, h.City.Get)
	api.Post("/cities", jwt, h.City.Create)
	api.Put("/cities/:id", jwt, h.City.Update)
	api.Delete("/cities/:id", jwt, admin, h.City.Delete)

	// Chapters
	api.Get("/chapters", jwt, h.Chapter.List)
	api.Get("/chapters/city/:id", jwt, h.Chapter.ListByCity)
	api.Get("/chapters/:id", jwt, h.Chapter.Get)
	api.Post("/chapters", jwt, h.Chapter.Create)
	api.Put("/chapters/:id", jwt, h.Chapter.Update)
	api.Delete("/chapters/:id", jwt, admin, h.Chapter.Delete)

	// Users
	api.Get("/users", jwt, h.User.List)
	api.Get("/users/me", jwt, h.User.Me)
	api.Get("/users/total-members", jwt, h.User.TotalMembers)
	api.Get("/users/upcoming-birthdays", jwt, h.User.UpcomingBirthdays)
	api.Get("/users/:id", jwt, h.User.Get)
	api.Post("/users", jwt, h.User.Create)
	api.Put("/users/change-password/:id", jwt, h.User.ChangePassword)
	api.Put("/users/:id", jwt, h.User.Update)
	api.Delete("/users/:id", jwt, admin, h.User.Delete)

	// Businesses and their service offerings
	api.Get("/businesses", jwt, h.Business.List)
	api.Get("/businesses/:id", jwt, h.Business.Get)
	api.Post("/businesses", jwt, h.Business.Create)
	api.Put("/businesses/:id", jwt, h.Business.Update)
	api.Delete("/businesses/:id", jwt, admin, h.Business.Delete)

	api.Get("/business-services", jwt, h.Business.ListServices)
	api.Get("/business-services/business/:id", jwt, h.Business.ListServicesByBusiness)
	api.Post("/business-services", jwt, h.Business.CreateService)
	api.Put("/business-services/:id", jwt, h.Business.UpdateService)
	api.Delete("/business-services/:id", jwt, h.Business.DeleteService)

	// Meetings and attendance
	api.Get("/meetings", jwt, h.Meeting.List)
	api.Get("/meetings/upcoming-meetings", jwt, h.Meeting.Upcoming)
	api.Get("/meetings/:id", jwt, h.Meeting.Get)
	api.Get("/meetings/:id/qr", jwt, h.Meeting.QRCode)
	api.Get("/meetings/:id/export-attendance", jwt, h.Meeting.ExportAttendance)
	api.Post("/meetings", jwt, h.Meeting.Create)
	api.Put("/meetings/:id", jwt, h.Meeting.Update)
	api.Delete("/meetings/:id", jwt, admin, h.Meeting.Delete)

	api.Post("/meeting-attendances", jwt, h.Meeting.RecordAttendance)
	api.Get("/meeting-attendances/:id/total-attendances", jwt, h.Meeting.TotalAttendances)

	// Events
	api.Get("/events", jwt, h.Event.List)
	api.Get("/events/:id", jwt, h.Event.Get)
	api.Post("/events", jwt, h.Event.Create)
	api.Put("/events/:id", jwt, h.Event.Update)
	api.Delete("/events/:id", jwt, admin, h.Event.Delete)

	// Activity metrics
	api.Get("/business-exchanges", jwt, h.Activity.ListExchanges)
	api.Get("/business-exchanges/total-revenue", jwt, h.Activity.TotalRevenue)
	api.Post("/business-exchanges", jwt, h.Activity.CreateExchange)

	api.Get("/reference-passes", jwt, h.Activity.ListReferences)
	api.Get("/reference-passes/total-passes", jwt, h.Activity.TotalPasses)
	api.Post("/reference-passes", jwt, h.Activity.CreateReference)

	api.Get("/personal-meetings", jwt, h.Activity.ListPersonalMeetings)
	api.Get("/personal-meetings/total-meetings", jwt, h.Activity.TotalPersonalMeetings)
	api.Post("/personal-meetings", jwt, h.Activity.CreatePersonalMeeting)

	// Reports
	api.Get("/attendance-reports", jwt, h.Report.AttendanceReport)
	api.Get("/chapter-reports", jwt, h.Report.ChapterReport)

	// Content management (writes are admin-only)
	api.Put("/privacy-policy", jwt, admin, h.Content.UpdatePrivacyPolicy)
	api.Put("/terms-and-conditions", jwt, admin, h.Content.UpdateTermsAndConditions)
	api.Put("/rule-book", jwt, admin, h.Content.UpdateRuleBook)

	// Uploads
	api.Post("/uploads", jwt, h.Upload.Upload)
}
