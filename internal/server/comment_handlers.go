package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPostComments returns a post's top-level comments newest first, each with
// its replies oldest first
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListPostComments(ctx, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: comments})
}

// GetComment returns a single comment with its replies
func (s *Server) GetComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: comment})
}

// CreateComment creates a comment or a reply on a post
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req service.CreateCommentInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{Success: true, Data: comment})
}

// UpdateComment edits a comment's content
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdateCommentInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(ctx, id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: comment})
}

// DeleteComment removes a comment and, for a top-level comment, its replies
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Message: "Comment deleted"})
}

// GetUserComments returns all comments written by a user, newest first
func (s *Server) GetUserComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListUserComments(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: comments})
}
