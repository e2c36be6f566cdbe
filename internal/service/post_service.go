// Package service contains the business logic sitting between the HTTP
// handlers and the repositories. Services validate input, enforce referential
// rules and translate storage errors into the application error taxonomy.
package service

import (
	"context"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	maxTitleLen     = 300
	maxContentLen   = 50000 // 50K characters
)

type PostService struct {
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	metadataRepo repository.MetadataRepository
}

type CreatePostInput struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Published  bool   `json:"published"`
	AuthorID   uint   `json:"author_id"`
	CategoryID uint   `json:"category_id"`
}

type UpdatePostInput struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Published  *bool   `json:"published"`
	CategoryID *uint   `json:"category_id"`
}

type SetMetadataInput struct {
	Metadata string `json:"metadata"`
	Keywords string `json:"keywords"`
}

// PostPage is one page of list results together with its pagination envelope.
type PostPage struct {
	Items      []*models.Post    `json:"items"`
	Pagination models.Pagination `json:"pagination"`
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	metadataRepo repository.MetadataRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		metadataRepo: metadataRepo,
	}
}

// ListPosts returns one page of posts matching filter. Page and pageSize are
// normalized: non-positive values fall back to the defaults and pageSize is
// capped. The total in the pagination envelope is the exact match count for
// the filter, so a filter matching nothing yields an empty page with total 0
// rather than an error.
func (s *PostService) ListPosts(ctx context.Context, filter models.PostFilter, page, pageSize int) (*PostPage, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	offset := (page - 1) * pageSize

	// The unfiltered front page is by far the hottest query; serve it
	// cache-aside with a short TTL.
	if isEmptyFilter(filter) && page == 1 && pageSize == defaultPageSize {
		var result PostPage
		err := cache.Aside(ctx, cache.RecentPostsKey, &result, cache.RecentPostsTTL, func() error {
			items, total, err := s.postRepo.List(ctx, filter, pageSize, offset)
			if err != nil {
				return models.TranslateDBError(err, "post", 0)
			}
			result = PostPage{Items: items, Pagination: models.NewPagination(page, pageSize, total)}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &result, nil
	}

	items, total, err := s.postRepo.List(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, models.TranslateDBError(err, "post", 0)
	}
	return &PostPage{
		Items:      items,
		Pagination: models.NewPagination(page, pageSize, total),
	}, nil
}

// GetPost returns the fully-loaded post detail view, cache-aside under the
// per-post key. Every write path that touches the detail view (post updates,
// tag replacement, comments, metadata, view counts) invalidates that key.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		loaded, err := s.postRepo.GetByID(ctx, id)
		if err != nil {
			return models.TranslateDBError(err, "post", id)
		}
		post = *loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 50000 characters)")
	}
	if in.AuthorID == 0 {
		return nil, models.NewValidationError("author_id is required")
	}
	if in.CategoryID == 0 {
		return nil, models.NewValidationError("category_id is required")
	}

	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, referenceError(err, "author", in.AuthorID)
	}
	if _, err := s.categoryRepo.GetByID(ctx, in.CategoryID); err != nil {
		return nil, referenceError(err, "category", in.CategoryID)
	}

	post := &models.Post{
		Title:      in.Title,
		Content:    in.Content,
		Published:  in.Published,
		AuthorID:   in.AuthorID,
		CategoryID: in.CategoryID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.TranslateDBError(err, "post", 0)
	}
	return s.GetPost(ctx, post.ID)
}

func (s *PostService) UpdatePost(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.TranslateDBError(err, "post", id)
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		if len(*in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 300 characters)")
		}
		post.Title = *in.Title
	}
	if in.Content != nil {
		if strings.TrimSpace(*in.Content) == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		if len(*in.Content) > maxContentLen {
			return nil, models.NewValidationError("Content too long (max 50000 characters)")
		}
		post.Content = *in.Content
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *in.CategoryID); err != nil {
			return nil, referenceError(err, "category", *in.CategoryID)
		}
		post.CategoryID = *in.CategoryID
	}

	// Save the bare row; associations were loaded for validation only.
	post.Author = nil
	post.Category = nil
	post.Comments = nil
	post.Tags = nil
	post.Metadata = nil

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.TranslateDBError(err, "post", id)
	}
	return s.GetPost(ctx, id)
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.TranslateDBError(err, "post", id)
	}
	return nil
}

// IncrementViewCount bumps the post's view counter by one.
func (s *PostService) IncrementViewCount(ctx context.Context, id uint) error {
	if err := s.postRepo.IncrementViewCount(ctx, id); err != nil {
		return models.TranslateDBError(err, "post", id)
	}
	return nil
}

func (s *PostService) GetPostMetadata(ctx context.Context, postID uint) (*models.PostMetadata, error) {
	meta, err := s.metadataRepo.GetByPost(ctx, postID)
	if err != nil {
		return nil, models.TranslateDBError(err, "post metadata", postID)
	}
	return meta, nil
}

// SetPostMetadata creates or overwrites the metadata record for the post.
func (s *PostService) SetPostMetadata(ctx context.Context, postID uint, in SetMetadataInput) (*models.PostMetadata, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, models.TranslateDBError(err, "post", postID)
	}

	meta := &models.PostMetadata{
		PostID:   postID,
		Metadata: in.Metadata,
		Keywords: in.Keywords,
	}
	if err := s.metadataRepo.Upsert(ctx, meta); err != nil {
		return nil, models.TranslateDBError(err, "post metadata", postID)
	}
	return s.GetPostMetadata(ctx, postID)
}

func (s *PostService) DeletePostMetadata(ctx context.Context, postID uint) error {
	if err := s.metadataRepo.DeleteByPost(ctx, postID); err != nil {
		return models.TranslateDBError(err, "post metadata", postID)
	}
	return nil
}

// isEmptyFilter reports whether the filter imposes no restriction.
func isEmptyFilter(f models.PostFilter) bool {
	return f.Published == nil && f.AuthorID == nil && f.CategoryID == nil && strings.TrimSpace(f.Search) == ""
}

// referenceError maps a lookup failure for a referenced row to the invalid
// reference error the caller should see; storage failures pass through.
func referenceError(err error, resource string, id uint) error {
	appErr := models.TranslateDBError(err, resource, id)
	if appErr.Code == models.CodeNotFound {
		return models.NewInvalidReferenceError(appErr.Message)
	}
	return appErr
}
