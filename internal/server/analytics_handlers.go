package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPostsWithDetails returns the joined post/author/category report
func (s *Server) GetPostsWithDetails(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rows, err := s.analyticsService.PostsWithDetails(ctx, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: rows})
}

// GetPostsPerCategory returns aggregate post statistics per category
func (s *Server) GetPostsPerCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rows, err := s.analyticsService.PostsPerCategory(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: rows})
}

// GetPostRankings ranks published posts by view count
func (s *Server) GetPostRankings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rows, err := s.analyticsService.PostRankings(ctx, c.QueryInt("limit", 20))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: rows})
}

// GetCategoryRankings ranks published posts by view count within each category
func (s *Server) GetCategoryRankings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rows, err := s.analyticsService.CategoryRankings(ctx, c.QueryInt("limit", 50))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: rows})
}

// GetPostsWithNeighbors pairs each published post with its chronological neighbors
func (s *Server) GetPostsWithNeighbors(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rows, err := s.analyticsService.PostsWithNeighbors(ctx, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: rows})
}

// SearchPostsByKeyword finds posts whose metadata keywords contain the keyword
func (s *Server) SearchPostsByKeyword(c *fiber.Ctx) error {
	ctx := c.UserContext()

	rows, err := s.analyticsService.SearchByKeyword(ctx, c.Query("keyword"), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: rows})
}

// GetDashboardStats returns the aggregate dashboard snapshot
func (s *Server) GetDashboardStats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := s.analyticsService.DashboardStats(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.APIResponse{Success: true, Data: stats})
}
