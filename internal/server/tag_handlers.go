package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTags returns all tags with their usage counts
func (s *Server) GetTags(c *fiber.Ctx) error {
	ctx := c.UserContext()

	tags, err := s.tagService.ListTags(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: tags})
}

// GetTag returns a single tag
func (s *Server) GetTag(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tag, err := s.tagService.GetTag(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: tag})
}

// CreateTag creates a new tag
func (s *Server) CreateTag(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req service.TagInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.CreateTag(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{Success: true, Data: tag})
}

// UpdateTag renames a tag
func (s *Server) UpdateTag(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.TagInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.UpdateTag(ctx, id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: tag})
}

// DeleteTag removes a tag and its post links
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tagService.DeleteTag(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Message: "Tag deleted"})
}

// GetPostTags returns the post's tags ordered by tag ID
func (s *Server) GetPostTags(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tags, err := s.tagService.ListPostTags(ctx, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: tags})
}

// SetPostTags atomically replaces the post's tag set and returns the
// resulting set ordered by tag ID
func (s *Server) SetPostTags(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		TagIDs []uint `json:"tagIds"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	tags, err := s.tagService.SetPostTags(ctx, postID, req.TagIDs)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: tags})
}
