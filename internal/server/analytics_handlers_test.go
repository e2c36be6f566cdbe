package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsEndpoints(t *testing.T) {
	app, db := setupTestApp(t)
	f := seedWebFixture(t, db)

	posts := []models.Post{
		{Title: "Popular", Content: "x", Published: true, ViewCount: 100, AuthorID: f.author.ID, CategoryID: f.category.ID},
		{Title: "Quiet", Content: "x", Published: true, ViewCount: 5, AuthorID: f.author.ID, CategoryID: f.category.ID},
	}
	for i := range posts {
		require.NoError(t, db.Create(&posts[i]).Error)
	}
	require.NoError(t, db.Create(&models.PostMetadata{PostID: posts[0].ID, Keywords: `["go"]`}).Error)

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/analytics/rankings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rankings []models.PostRankingRow
	require.NoError(t, json.Unmarshal(env.Data, &rankings))
	require.Len(t, rankings, 2)
	assert.Equal(t, "Popular", rankings[0].Title)
	assert.Equal(t, 1, rankings[0].Rank)

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/analytics/keyword-search?keyword=go", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var found []models.PostDetailsRow
	require.NoError(t, json.Unmarshal(env.Data, &found))
	require.Len(t, found, 1)
	assert.Equal(t, "Popular", found[0].Title)

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/analytics/keyword-search", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, models.CodeValidationError, env.Code)

	resp, env = doJSON(t, app, fiber.MethodGet, "/api/analytics/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 2, stats.TotalPosts)
	assert.Equal(t, 2, stats.PublishedPosts)
}

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"id", "ID"},
		{"postId", "post ID"},
		{"parentCommentId", "parent comment ID"},
		{"slug", "slug"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeParam(tt.in))
	}
}
