package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const maxCommentLen = 10000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	Content  string `json:"content"`
	PostID   uint   `json:"post_id"`
	AuthorID uint   `json:"author_id"`
	ParentID *uint  `json:"parent_id"`
}

type UpdateCommentInput struct {
	Content string `json:"content"`
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// ListPostComments returns the post's top-level comments newest first with
// their replies oldest first.
func (s *CommentService) ListPostComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, models.TranslateDBError(err, "post", postID)
	}
	comments, err := s.commentRepo.ListTopLevelByPost(ctx, postID)
	if err != nil {
		return nil, models.TranslateDBError(err, "comment", 0)
	}
	return comments, nil
}

func (s *CommentService) ListUserComments(ctx context.Context, authorID uint) ([]*models.Comment, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, models.TranslateDBError(err, "user", authorID)
	}
	comments, err := s.commentRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, models.TranslateDBError(err, "comment", 0)
	}
	return comments, nil
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.TranslateDBError(err, "comment", id)
	}
	return comment, nil
}

// CreateComment adds a comment or a reply. Comment threads are two levels
// deep at most: a reply must point at a top-level comment on the same post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}
	if in.PostID == 0 {
		return nil, models.NewValidationError("post_id is required")
	}
	if in.AuthorID == 0 {
		return nil, models.NewValidationError("author_id is required")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, referenceError(err, "post", in.PostID)
	}
	if _, err := s.userRepo.GetByID(ctx, in.AuthorID); err != nil {
		return nil, referenceError(err, "author", in.AuthorID)
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, referenceError(err, "parent comment", *in.ParentID)
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
		if parent.ParentID != nil {
			return nil, models.NewValidationError("Replies to replies are not allowed")
		}
	}

	comment := &models.Comment{
		Content:  in.Content,
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		ParentID: in.ParentID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.TranslateDBError(err, "comment", 0)
	}
	return s.GetComment(ctx, comment.ID)
}

func (s *CommentService) UpdateComment(ctx context.Context, id uint, in UpdateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.TranslateDBError(err, "comment", id)
	}
	comment.Content = in.Content

	// Save the bare row; associations were loaded for the read path only.
	comment.Author = nil
	comment.Replies = nil

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, models.TranslateDBError(err, "comment", id)
	}
	return s.GetComment(ctx, id)
}

// DeleteComment removes the comment and, for a top-level comment, its replies.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return models.TranslateDBError(err, "comment", id)
	}
	return nil
}
