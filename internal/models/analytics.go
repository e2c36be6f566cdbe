package models

import "time"

// PostDetailsRow is one row of the joined post/author/category report.
type PostDetailsRow struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Published    bool      `json:"published"`
	ViewCount    int       `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	AuthorName   string    `json:"author_name"`
	AuthorEmail  string    `json:"author_email"`
	CategoryName string    `json:"category_name"`
	CommentCount int       `json:"comment_count"`
}

// CategoryStatsRow aggregates post counts and view totals per category.
type CategoryStatsRow struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	PostCount    int     `json:"post_count"`
	TotalViews   int     `json:"total_views"`
	AvgViews     float64 `json:"avg_views"`
}

// PostRankingRow ranks published posts by view count.
type PostRankingRow struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	ViewCount    int    `json:"view_count"`
	AuthorName   string `json:"author_name"`
	CategoryName string `json:"category_name"`
	RowNumber    int    `json:"row_number"`
	Rank         int    `json:"rank"`
	DenseRank    int    `json:"dense_rank"`
}

// CategoryRankingRow ranks published posts by view count within their category.
type CategoryRankingRow struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	CategoryName   string    `json:"category_name"`
	ViewCount      int       `json:"view_count"`
	CreatedAt      time.Time `json:"created_at"`
	RankInCategory int       `json:"rank_in_category"`
}

// PostNeighborsRow pairs each published post with its chronological neighbors.
type PostNeighborsRow struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	CreatedAt         time.Time `json:"created_at"`
	PreviousPostID    *uint     `json:"previous_post_id"`
	PreviousPostTitle *string   `json:"previous_post_title"`
	NextPostID        *uint     `json:"next_post_id"`
	NextPostTitle     *string   `json:"next_post_title"`
}

// DashboardStats is the aggregate snapshot shown on the analytics dashboard.
type DashboardStats struct {
	TotalUsers          int     `json:"total_users"`
	TotalPosts          int     `json:"total_posts"`
	TotalComments       int     `json:"total_comments"`
	PublishedPosts      int     `json:"published_posts"`
	AvgCommentsPerPost  float64 `json:"avg_comments_per_post"`
	MostActiveCategory  string  `json:"most_active_category"`
	MostViewedPostTitle string  `json:"most_viewed_post_title"`
}
