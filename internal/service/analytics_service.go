package service

import (
	"context"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const (
	defaultReportLimit = 10
	maxReportLimit     = 100
)

type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

func (s *AnalyticsService) PostsWithDetails(ctx context.Context, limit int) ([]models.PostDetailsRow, error) {
	rows, err := s.analyticsRepo.PostsWithDetails(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, models.TranslateDBError(err, "report", 0)
	}
	return rows, nil
}

func (s *AnalyticsService) PostsPerCategory(ctx context.Context) ([]models.CategoryStatsRow, error) {
	rows, err := s.analyticsRepo.PostsPerCategory(ctx)
	if err != nil {
		return nil, models.TranslateDBError(err, "report", 0)
	}
	return rows, nil
}

func (s *AnalyticsService) PostRankings(ctx context.Context, limit int) ([]models.PostRankingRow, error) {
	rows, err := s.analyticsRepo.PostRankings(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, models.TranslateDBError(err, "report", 0)
	}
	return rows, nil
}

func (s *AnalyticsService) CategoryRankings(ctx context.Context, limit int) ([]models.CategoryRankingRow, error) {
	rows, err := s.analyticsRepo.CategoryRankings(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, models.TranslateDBError(err, "report", 0)
	}
	return rows, nil
}

func (s *AnalyticsService) PostsWithNeighbors(ctx context.Context, limit int) ([]models.PostNeighborsRow, error) {
	rows, err := s.analyticsRepo.PostsWithNeighbors(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, models.TranslateDBError(err, "report", 0)
	}
	return rows, nil
}

func (s *AnalyticsService) SearchByKeyword(ctx context.Context, keyword string, limit int) ([]models.PostDetailsRow, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, models.NewValidationError("Keyword is required")
	}
	rows, err := s.analyticsRepo.SearchByKeyword(ctx, keyword, normalizeLimit(limit))
	if err != nil {
		return nil, models.TranslateDBError(err, "report", 0)
	}
	return rows, nil
}

// DashboardStats serves the aggregate snapshot cache-aside; the underlying
// query touches every table.
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := cache.Aside(ctx, cache.DashboardStatsKey, &stats, cache.DashboardTTL, func() error {
		loaded, err := s.analyticsRepo.DashboardStats(ctx)
		if err != nil {
			return models.TranslateDBError(err, "report", 0)
		}
		stats = *loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultReportLimit
	}
	if limit > maxReportLimit {
		return maxReportLimit
	}
	return limit
}
