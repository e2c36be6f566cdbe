package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix     = "post:%d"
	RecentPostsKey    = "posts:recent"
	TagListKey        = "tags:all"
	CategoryListKey   = "categories:all"
	DashboardStatsKey = "analytics:dashboard"
)

const (
	PostTTL        = 30 * time.Minute
	RecentPostsTTL = 1 * time.Minute
	TagListTTL     = 10 * time.Minute
	CategoryTTL    = 10 * time.Minute
	DashboardTTL   = 5 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	Invalidate(ctx, RecentPostsKey)
}

func InvalidateTags(ctx context.Context) {
	Invalidate(ctx, TagListKey)
}

func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoryListKey)
}

func InvalidateDashboard(ctx context.Context) {
	Invalidate(ctx, DashboardStatsKey)
}
