package service

import (
	"context"
	"sort"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const maxTagNameLen = 50

type TagService struct {
	tagRepo  repository.TagRepository
	postRepo repository.PostRepository
}

type TagInput struct {
	Name string `json:"name"`
}

func NewTagService(tagRepo repository.TagRepository, postRepo repository.PostRepository) *TagService {
	return &TagService{tagRepo: tagRepo, postRepo: postRepo}
}

func (s *TagService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := cache.Aside(ctx, cache.TagListKey, &tags, cache.TagListTTL, func() error {
		loaded, err := s.tagRepo.List(ctx)
		if err != nil {
			return models.TranslateDBError(err, "tag", 0)
		}
		tags = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.TranslateDBError(err, "tag", id)
	}
	return tag, nil
}

func (s *TagService) CreateTag(ctx context.Context, in TagInput) (*models.Tag, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Tag name is required")
	}
	if len(name) > maxTagNameLen {
		return nil, models.NewValidationError("Tag name too long (max 50 characters)")
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, models.TranslateDBError(err, "tag", 0)
	}
	return tag, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id uint, in TagInput) (*models.Tag, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Tag name is required")
	}
	if len(name) > maxTagNameLen {
		return nil, models.NewValidationError("Tag name too long (max 50 characters)")
	}

	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, models.TranslateDBError(err, "tag", id)
	}
	tag.Name = name
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, models.TranslateDBError(err, "tag", id)
	}
	return tag, nil
}

func (s *TagService) DeleteTag(ctx context.Context, id uint) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return models.TranslateDBError(err, "tag", id)
	}
	return nil
}

// ListPostTags returns the post's tags ordered by tag ID.
func (s *TagService) ListPostTags(ctx context.Context, postID uint) ([]models.Tag, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, models.TranslateDBError(err, "post", postID)
	}
	tags, err := s.tagRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.TranslateDBError(err, "tag", 0)
	}
	return tags, nil
}

// SetPostTags replaces the post's tag set with tagIDs and returns the
// resulting set ordered by tag ID. The replacement is all-or-nothing: the
// post must exist, every tag ID must resolve, and the swap itself runs in a
// single transaction, so a failure leaves the previous tag set intact.
// Duplicate IDs in the request collapse to one link; an empty list clears all
// tags from the post.
func (s *TagService) SetPostTags(ctx context.Context, postID uint, tagIDs []uint) ([]models.Tag, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, models.TranslateDBError(err, "post", postID)
	}

	ids := dedupeIDs(tagIDs)
	if len(ids) > 0 {
		count, err := s.tagRepo.CountByIDs(ctx, ids)
		if err != nil {
			return nil, models.TranslateDBError(err, "tag", 0)
		}
		if count != int64(len(ids)) {
			return nil, models.NewInvalidReferenceError("one or more tag IDs do not exist")
		}
	}

	tags, err := s.tagRepo.ReplaceForPost(ctx, postID, ids)
	if err != nil {
		// A tag deleted between the count check and the insert surfaces as
		// a foreign key violation; report it the same way.
		appErr := models.TranslateDBError(err, "tag", 0)
		if appErr.Code == models.CodeInvalidReference {
			return nil, models.NewInvalidReferenceError("one or more tag IDs do not exist")
		}
		return nil, appErr
	}
	return tags, nil
}

// dedupeIDs drops duplicate IDs and returns the remainder sorted ascending.
func dedupeIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
