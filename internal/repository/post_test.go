package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	repo := NewPostRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	posts := []*models.Post{
		{Title: "Go concurrency patterns", Content: "channels and goroutines", Published: true, AuthorID: f.alice.ID, CategoryID: f.tech.ID, CreatedAt: base.Add(3 * time.Hour)},
		{Title: "Draft thoughts", Content: "not ready yet", Published: false, AuthorID: f.alice.ID, CategoryID: f.tech.ID, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "Slow cooking", Content: "a braise takes patience", Published: true, AuthorID: f.bob.ID, CategoryID: f.life.ID, CreatedAt: base.Add(1 * time.Hour)},
	}
	for _, p := range posts {
		require.NoError(t, repo.Create(ctx, p))
	}

	t.Run("no filter returns everything newest first", func(t *testing.T) {
		items, total, err := repo.List(ctx, models.PostFilter{}, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, items, 3)
		assert.Equal(t, "Go concurrency patterns", items[0].Title)
		assert.Equal(t, "Slow cooking", items[2].Title)
	})

	t.Run("published filter is exact", func(t *testing.T) {
		published := false
		items, total, err := repo.List(ctx, models.PostFilter{Published: &published}, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Draft thoughts", items[0].Title)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		published := true
		items, total, err := repo.List(ctx, models.PostFilter{Published: &published, AuthorID: &f.alice.ID}, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Go concurrency patterns", items[0].Title)
	})

	t.Run("category filter", func(t *testing.T) {
		items, total, err := repo.List(ctx, models.PostFilter{CategoryID: &f.life.ID}, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Slow cooking", items[0].Title)
	})

	t.Run("search is case-insensitive across title and content", func(t *testing.T) {
		_, total, err := repo.List(ctx, models.PostFilter{Search: "GO CONCURRENCY"}, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)

		// matches content, not title
		items, total, err := repo.List(ctx, models.PostFilter{Search: "BRAISE"}, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Slow cooking", items[0].Title)
	})

	t.Run("filter matching nothing yields empty page and zero total", func(t *testing.T) {
		items, total, err := repo.List(ctx, models.PostFilter{Search: "no such phrase"}, 10, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
		assert.Empty(t, items)
	})

	t.Run("author projection only exposes id name email", func(t *testing.T) {
		items, _, err := repo.List(ctx, models.PostFilter{}, 1, 0)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Author)
		assert.Equal(t, "Alice", items[0].Author.Name)
		require.NotNil(t, items[0].Category)
		assert.Equal(t, "Technology", items[0].Category.Name)
	})
}

func TestPostRepository_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	repo := NewPostRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	titles := []string{"first", "second", "third", "fourth", "fifth"}
	for i, title := range titles {
		p := &models.Post{
			Title:      title,
			Content:    "content",
			Published:  true,
			AuthorID:   f.alice.ID,
			CategoryID: f.tech.ID,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, p))
	}

	// page 1
	items, total, err := repo.List(ctx, models.PostFilter{}, 2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, "fifth", items[0].Title)
	assert.Equal(t, "fourth", items[1].Title)

	// page 3 has the remainder
	items, total, err = repo.List(ctx, models.PostFilter{}, 2, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, items, 1)
	assert.Equal(t, "first", items[0].Title)

	// past the end: empty page, same total
	items, total, err = repo.List(ctx, models.PostFilter{}, 2, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Empty(t, items)
}

func TestPostRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	tagRepo := NewTagRepository(db)
	metaRepo := NewMetadataRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "Enriched", Content: "body", Published: true, AuthorID: f.alice.ID, CategoryID: f.tech.ID}
	require.NoError(t, postRepo.Create(ctx, post))

	// two top-level comments with one reply under the older one
	older := &models.Comment{Content: "older", PostID: post.ID, AuthorID: f.bob.ID, CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	newer := &models.Comment{Content: "newer", PostID: post.ID, AuthorID: f.bob.ID, CreatedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)}
	require.NoError(t, commentRepo.Create(ctx, older))
	require.NoError(t, commentRepo.Create(ctx, newer))
	reply := &models.Comment{Content: "reply", PostID: post.ID, AuthorID: f.alice.ID, ParentID: &older.ID}
	require.NoError(t, commentRepo.Create(ctx, reply))

	// attach tags in reverse id order; read-back must sort by id
	_, err := tagRepo.ReplaceForPost(ctx, post.ID, []uint{f.webTag.ID, f.goTag.ID})
	require.NoError(t, err)

	require.NoError(t, metaRepo.Upsert(ctx, &models.PostMetadata{PostID: post.ID, Metadata: `{"readingTime":4}`, Keywords: `["go"]`}))

	got, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, got.CommentsCount, "replies count toward the comment total")
	require.NotNil(t, got.Author)
	assert.Equal(t, "Alice", got.Author.Name)
	require.NotNil(t, got.Category)

	require.Len(t, got.Tags, 2)
	assert.Equal(t, f.goTag.ID, got.Tags[0].ID)
	assert.Equal(t, f.webTag.ID, got.Tags[1].ID)

	// only top-level comments at the first level, newest first
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "newer", got.Comments[0].Content)
	assert.Equal(t, "older", got.Comments[1].Content)
	require.Len(t, got.Comments[1].Replies, 1)
	assert.Equal(t, "reply", got.Comments[1].Replies[0].Content)

	require.NotNil(t, got.Metadata)
	assert.Equal(t, `{"readingTime":4}`, got.Metadata.Metadata)

	_, err = postRepo.GetByID(ctx, 9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPostRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	tagRepo := NewTagRepository(db)
	metaRepo := NewMetadataRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "Doomed", Content: "body", AuthorID: f.alice.ID, CategoryID: f.tech.ID}
	require.NoError(t, postRepo.Create(ctx, post))

	c := &models.Comment{Content: "bye", PostID: post.ID, AuthorID: f.bob.ID}
	require.NoError(t, commentRepo.Create(ctx, c))
	_, err := tagRepo.ReplaceForPost(ctx, post.ID, []uint{f.goTag.ID})
	require.NoError(t, err)
	require.NoError(t, metaRepo.Upsert(ctx, &models.PostMetadata{PostID: post.ID, Metadata: "{}"}))

	require.NoError(t, postRepo.Delete(ctx, post.ID))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&models.PostTag{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&models.PostMetadata{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// the tag itself survives
	_, err = tagRepo.GetByID(ctx, f.goTag.ID)
	assert.NoError(t, err)

	err = postRepo.Delete(ctx, post.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPostRepository_IncrementViewCount(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "Counted", Content: "body", AuthorID: f.alice.ID, CategoryID: f.tech.ID}
	require.NoError(t, repo.Create(ctx, post))

	require.NoError(t, repo.IncrementViewCount(ctx, post.ID))
	require.NoError(t, repo.IncrementViewCount(ctx, post.ID))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ViewCount)

	err = repo.IncrementViewCount(ctx, 9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPostRepository_CreatePropagatesDriverError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	err := repo.Create(ctx, &models.Post{Title: "x", Content: "y", AuthorID: 1, CategoryID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_CountErrorAborts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "posts"`)).
		WillReturnError(errors.New("server closed the connection"))

	_, _, err := repo.List(ctx, models.PostFilter{}, 10, 0)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
