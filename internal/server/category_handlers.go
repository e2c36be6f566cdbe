package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCategories returns all categories with their post counts
func (s *Server) GetCategories(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := s.categoryService.ListCategories(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: categories})
}

// GetCategory returns a single category
func (s *Server) GetCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	category, err := s.categoryService.GetCategory(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: category})
}

// CreateCategory creates a new category
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req service.CategoryInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.CreateCategory(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{Success: true, Data: category})
}

// UpdateCategory updates a category's name and description
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.CategoryInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	category, err := s.categoryService.UpdateCategory(ctx, id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: category})
}

// DeleteCategory removes a category without posts
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.categoryService.DeleteCategory(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Message: "Category deleted"})
}
