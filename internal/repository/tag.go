package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines the interface for tag data operations
type TagRepository interface {
	List(ctx context.Context) ([]*models.Tag, error)
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uint) error
	ListByPost(ctx context.Context, postID uint) ([]models.Tag, error)
	CountByIDs(ctx context.Context, ids []uint) (int64, error)
	ReplaceForPost(ctx context.Context, postID uint, tagIDs []uint) ([]models.Tag, error)
}

// tagRepository implements TagRepository
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.WithContext(ctx).
		Select("tags.*, " +
			"(SELECT COUNT(*) FROM post_tags WHERE post_tags.tag_id = tags.id) as posts_count").
		Order("tags.name ASC").
		Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).
		Select("tags.*, " +
			"(SELECT COUNT(*) FROM post_tags WHERE post_tags.tag_id = tags.id) as posts_count").
		First(&tag, id).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	err := r.db.WithContext(ctx).Create(tag).Error
	if err == nil {
		cache.InvalidateTags(ctx)
	}
	return err
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	err := r.db.WithContext(ctx).Save(tag).Error
	if err == nil {
		cache.InvalidateTags(ctx)
	}
	return err
}

// Delete removes the tag and its post links in one transaction.
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Tag{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == nil {
		cache.InvalidateTags(ctx)
	}
	return err
}

func (r *tagRepository) ListByPost(ctx context.Context, postID uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.id ASC").
		Find(&tags).Error
	return tags, err
}

func (r *tagRepository) CountByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

// ReplaceForPost swaps the post's tag set for tagIDs atomically: the old links
// are deleted and the new ones inserted inside one transaction, then the
// resulting set is read back. A failure anywhere rolls the whole replacement
// back, so the post never ends up with a partial tag set.
func (r *tagRepository) ReplaceForPost(ctx context.Context, postID uint, tagIDs []uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		if len(tagIDs) > 0 {
			links := make([]models.PostTag, 0, len(tagIDs))
			for _, tagID := range tagIDs {
				links = append(links, models.PostTag{PostID: postID, TagID: tagID})
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		return tx.
			Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
			Where("post_tags.post_id = ?", postID).
			Order("tags.id ASC").
			Find(&tags).Error
	})
	if err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, postID)
	return tags, nil
}
