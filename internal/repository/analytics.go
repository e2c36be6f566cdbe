package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository runs the hand-written SQL reports. Everything here is
// read-only and kept portable between PostgreSQL and the SQLite test database
// (no casts, no NOW(), no array operators).
type AnalyticsRepository interface {
	PostsWithDetails(ctx context.Context, limit int) ([]models.PostDetailsRow, error)
	PostsPerCategory(ctx context.Context) ([]models.CategoryStatsRow, error)
	PostRankings(ctx context.Context, limit int) ([]models.PostRankingRow, error)
	CategoryRankings(ctx context.Context, limit int) ([]models.CategoryRankingRow, error)
	PostsWithNeighbors(ctx context.Context, limit int) ([]models.PostNeighborsRow, error)
	SearchByKeyword(ctx context.Context, keyword string, limit int) ([]models.PostDetailsRow, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// analyticsRepository implements AnalyticsRepository
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) PostsWithDetails(ctx context.Context, limit int) ([]models.PostDetailsRow, error) {
	var rows []models.PostDetailsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.title,
			p.content,
			p.published,
			p.view_count,
			p.created_at,
			u.name AS author_name,
			u.email AS author_email,
			c.name AS category_name,
			COUNT(cm.id) AS comment_count
		FROM posts p
		INNER JOIN users u ON p.author_id = u.id
		INNER JOIN categories c ON p.category_id = c.id
		LEFT JOIN comments cm ON p.id = cm.post_id
		GROUP BY p.id, p.title, p.content, p.published, p.view_count, p.created_at, u.name, u.email, c.name
		ORDER BY p.created_at DESC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) PostsPerCategory(ctx context.Context) ([]models.CategoryStatsRow, error) {
	var rows []models.CategoryStatsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id AS category_id,
			c.name AS category_name,
			COUNT(p.id) AS post_count,
			COALESCE(SUM(p.view_count), 0) AS total_views,
			COALESCE(AVG(p.view_count), 0) AS avg_views
		FROM categories c
		LEFT JOIN posts p ON c.id = p.category_id
		GROUP BY c.id, c.name
		HAVING COUNT(p.id) > 0
		ORDER BY post_count DESC`).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) PostRankings(ctx context.Context, limit int) ([]models.PostRankingRow, error) {
	var rows []models.PostRankingRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.title,
			p.view_count,
			u.name AS author_name,
			c.name AS category_name,
			ROW_NUMBER() OVER (ORDER BY p.view_count DESC) AS row_number,
			RANK() OVER (ORDER BY p.view_count DESC) AS rank,
			DENSE_RANK() OVER (ORDER BY p.view_count DESC) AS dense_rank
		FROM posts p
		INNER JOIN users u ON p.author_id = u.id
		INNER JOIN categories c ON p.category_id = c.id
		WHERE p.published = ?
		ORDER BY p.view_count DESC
		LIMIT ?`, true, limit).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) CategoryRankings(ctx context.Context, limit int) ([]models.CategoryRankingRow, error) {
	var rows []models.CategoryRankingRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.title,
			c.name AS category_name,
			p.view_count,
			p.created_at,
			RANK() OVER (PARTITION BY c.id ORDER BY p.view_count DESC) AS rank_in_category
		FROM posts p
		INNER JOIN categories c ON p.category_id = c.id
		WHERE p.published = ?
		ORDER BY c.name, rank_in_category
		LIMIT ?`, true, limit).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) PostsWithNeighbors(ctx context.Context, limit int) ([]models.PostNeighborsRow, error) {
	var rows []models.PostNeighborsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.title,
			p.created_at,
			LAG(p.id) OVER (ORDER BY p.created_at) AS previous_post_id,
			LAG(p.title) OVER (ORDER BY p.created_at) AS previous_post_title,
			LEAD(p.id) OVER (ORDER BY p.created_at) AS next_post_id,
			LEAD(p.title) OVER (ORDER BY p.created_at) AS next_post_title
		FROM posts p
		WHERE p.published = ?
		ORDER BY p.created_at DESC
		LIMIT ?`, true, limit).Scan(&rows).Error
	return rows, err
}

// SearchByKeyword matches against the JSON-encoded keywords column with a
// quoted LIKE pattern, so "go" does not match "golang".
func (r *analyticsRepository) SearchByKeyword(ctx context.Context, keyword string, limit int) ([]models.PostDetailsRow, error) {
	var rows []models.PostDetailsRow
	pattern := `%"` + keyword + `"%`
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.title,
			p.content,
			p.published,
			p.view_count,
			p.created_at,
			u.name AS author_name,
			u.email AS author_email,
			c.name AS category_name,
			0 AS comment_count
		FROM posts p
		INNER JOIN post_metadata pm ON p.id = pm.post_id
		INNER JOIN users u ON p.author_id = u.id
		INNER JOIN categories c ON p.category_id = c.id
		WHERE pm.keywords LIKE ?
		ORDER BY p.created_at DESC
		LIMIT ?`, pattern, limit).Scan(&rows).Error
	return rows, err
}

func (r *analyticsRepository) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := r.db.WithContext(ctx).Raw(`
		WITH stats AS (
			SELECT
				(SELECT COUNT(*) FROM users) AS total_users,
				(SELECT COUNT(*) FROM posts) AS total_posts,
				(SELECT COUNT(*) FROM comments) AS total_comments,
				(SELECT COUNT(*) FROM posts WHERE published = ?) AS published_posts
		)
		SELECT
			stats.total_users,
			stats.total_posts,
			stats.total_comments,
			stats.published_posts,
			COALESCE((SELECT AVG(comment_count)
				FROM (
					SELECT COUNT(c.id) AS comment_count
					FROM posts p
					LEFT JOIN comments c ON p.id = c.post_id
					GROUP BY p.id
				) sub
			), 0) AS avg_comments_per_post,
			COALESCE((SELECT c.name
				FROM categories c
				INNER JOIN posts p ON c.id = p.category_id
				GROUP BY c.id, c.name
				ORDER BY COUNT(p.id) DESC
				LIMIT 1
			), '') AS most_active_category,
			COALESCE((SELECT p.title
				FROM posts p
				ORDER BY p.view_count DESC
				LIMIT 1
			), '') AS most_viewed_post_title
		FROM stats`, true).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
