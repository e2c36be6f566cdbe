package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers returns all users with their post and comment counts
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	users, err := s.userService.ListUsers(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: users})
}

// GetUser returns a single user with counts and their posts
func (s *Server) GetUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: user})
}

// CreateUser registers a new user
func (s *Server) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req service.CreateUserInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{Success: true, Data: user})
}

// UpdateUser applies a partial update to a user
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdateUserInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(ctx, id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: user})
}

// DeleteUser removes a user without content
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Message: "User deleted"})
}
