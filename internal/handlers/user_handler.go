package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/middleware"
	"github.com/clubgrid/clubgrid-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return serverError(c, "Failed to fetch users")
	}
	return listOK(c, users)
}

// Me returns the profile of the authenticated user.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	id, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	user, err := h.userService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to fetch user")
	}
	return c.JSON(user)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	user, err := h.userService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to fetch user")
	}
	return c.JSON(user)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return conflict(c, err.Error())
		}
		return mutationError(c, err, "Failed to create user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			return conflict(c, err.Error())
		default:
			return mutationError(c, err, "Failed to update user")
		}
	}
	return c.JSON(user)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return serverError(c, "Failed to delete user")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "User and business profile deleted"})
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.userService.ChangePassword(id, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, services.ErrWrongOldPassword):
			return badRequest(c, err.Error())
		default:
			return mutationError(c, err, "Failed to change password")
		}
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Password updated"})
}

func (h *UserHandler) TotalMembers(c *fiber.Ctx) error {
	total, err := h.userService.TotalMembers()
	if err != nil {
		return serverError(c, "Failed to count members")
	}
	return c.JSON(dto.TotalResponse{Success: true, Total: float64(total)})
}

func (h *UserHandler) UpcomingBirthdays(c *fiber.Ctx) error {
	birthdays, err := h.userService.UpcomingBirthdays(time.Now())
	if err != nil {
		return serverError(c, "Failed to fetch upcoming birthdays")
	}
	return listOK(c, birthdays)
}
