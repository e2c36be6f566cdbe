package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts returns one page of posts with optional filters: published,
// authorId, categoryId and search combine with AND.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	published, err := queryBool(c, "published")
	if err != nil {
		return nil
	}
	authorID, err := queryUint(c, "authorId")
	if err != nil {
		return nil
	}
	categoryID, err := queryUint(c, "categoryId")
	if err != nil {
		return nil
	}

	filter := models.PostFilter{
		Published:  published,
		AuthorID:   authorID,
		CategoryID: categoryID,
		Search:     c.Query("search"),
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	result, err := s.postService.ListPosts(ctx, filter, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.PaginatedResponse{
		Success:    true,
		Data:       result.Items,
		Pagination: result.Pagination,
	})
}

// GetPost returns a single post with author, category, tags, the comment tree
// and metadata.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: post})
}

// CreatePost creates a new post
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req service.CreatePostInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{Success: true, Data: post})
}

// UpdatePost applies a partial update to a post
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdatePostInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: post})
}

// DeletePost removes a post with its comments, tag links and metadata
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Message: "Post deleted"})
}

// IncrementPostViews bumps the post's view counter
func (s *Server) IncrementPostViews(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.IncrementViewCount(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Message: "View recorded"})
}

// GetPostMetadata returns the post's metadata record
func (s *Server) GetPostMetadata(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	meta, err := s.postService.GetPostMetadata(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: meta})
}

// SetPostMetadata creates or replaces the post's metadata record
func (s *Server) SetPostMetadata(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.SetMetadataInput
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	meta, err := s.postService.SetPostMetadata(ctx, id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: meta})
}

// DeletePostMetadata removes the post's metadata record
func (s *Server) DeletePostMetadata(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePostMetadata(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Message: "Metadata deleted"})
}
