package repository

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_Reports(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	metaRepo := NewMetadataRepository(db)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	posts := []*models.Post{
		{Title: "Top post", Content: "x", Published: true, ViewCount: 300, AuthorID: f.alice.ID, CategoryID: f.tech.ID, CreatedAt: base},
		{Title: "Middle post", Content: "x", Published: true, ViewCount: 200, AuthorID: f.bob.ID, CategoryID: f.tech.ID, CreatedAt: base.Add(time.Hour)},
		{Title: "Tied post", Content: "x", Published: true, ViewCount: 200, AuthorID: f.bob.ID, CategoryID: f.life.ID, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "Hidden draft", Content: "x", Published: false, ViewCount: 999, AuthorID: f.alice.ID, CategoryID: f.life.ID, CreatedAt: base.Add(3 * time.Hour)},
	}
	for _, p := range posts {
		require.NoError(t, postRepo.Create(ctx, p))
	}
	require.NoError(t, commentRepo.Create(ctx, &models.Comment{Content: "c1", PostID: posts[0].ID, AuthorID: f.bob.ID}))
	require.NoError(t, commentRepo.Create(ctx, &models.Comment{Content: "c2", PostID: posts[0].ID, AuthorID: f.alice.ID}))
	require.NoError(t, metaRepo.Upsert(ctx, &models.PostMetadata{PostID: posts[0].ID, Metadata: `{"featured":true}`, Keywords: `["go","sql"]`}))

	t.Run("posts with details", func(t *testing.T) {
		rows, err := repo.PostsWithDetails(ctx, 10)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		// newest first
		assert.Equal(t, "Hidden draft", rows[0].Title)
		byTitle := map[string]models.PostDetailsRow{}
		for _, r := range rows {
			byTitle[r.Title] = r
		}
		assert.Equal(t, 2, byTitle["Top post"].CommentCount)
		assert.Equal(t, "Alice", byTitle["Top post"].AuthorName)
		assert.Equal(t, "Technology", byTitle["Top post"].CategoryName)
	})

	t.Run("posts per category", func(t *testing.T) {
		rows, err := repo.PostsPerCategory(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		// tech has 2 posts, lifestyle has 2 as well; verify totals
		byName := map[string]models.CategoryStatsRow{}
		for _, r := range rows {
			byName[r.CategoryName] = r
		}
		assert.Equal(t, 2, byName["Technology"].PostCount)
		assert.Equal(t, 500, byName["Technology"].TotalViews)
		assert.Equal(t, 2, byName["Lifestyle"].PostCount)
	})

	t.Run("rankings handle ties", func(t *testing.T) {
		rows, err := repo.PostRankings(ctx, 20)
		require.NoError(t, err)
		require.Len(t, rows, 3, "drafts are excluded")
		assert.Equal(t, "Top post", rows[0].Title)
		assert.Equal(t, 1, rows[0].Rank)
		assert.Equal(t, 2, rows[1].Rank)
		assert.Equal(t, 2, rows[2].Rank)
		assert.Equal(t, 2, rows[1].DenseRank)
		assert.Equal(t, 3, rows[2].RowNumber)
	})

	t.Run("category rankings partition by category", func(t *testing.T) {
		rows, err := repo.CategoryRankings(ctx, 50)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		for _, r := range rows {
			if r.Title == "Tied post" {
				assert.Equal(t, 1, r.RankInCategory, "only published post in its category")
			}
		}
	})

	t.Run("neighbors", func(t *testing.T) {
		rows, err := repo.PostsWithNeighbors(ctx, 10)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		// newest published post: has a previous, no next
		assert.Equal(t, "Tied post", rows[0].Title)
		require.NotNil(t, rows[0].PreviousPostID)
		assert.Equal(t, posts[1].ID, *rows[0].PreviousPostID)
		assert.Nil(t, rows[0].NextPostID)
	})

	t.Run("keyword search matches whole keywords", func(t *testing.T) {
		rows, err := repo.SearchByKeyword(ctx, "go", 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Top post", rows[0].Title)

		rows, err = repo.SearchByKeyword(ctx, "golang", 10)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("dashboard stats", func(t *testing.T) {
		stats, err := repo.DashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalUsers)
		assert.Equal(t, 4, stats.TotalPosts)
		assert.Equal(t, 2, stats.TotalComments)
		assert.Equal(t, 3, stats.PublishedPosts)
		assert.InDelta(t, 0.5, stats.AvgCommentsPerPost, 0.001)
		assert.Equal(t, "Hidden draft", stats.MostViewedPostTitle)
		assert.NotEmpty(t, stats.MostActiveCategory)
	})
}
