package repository

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetadataRepository defines the interface for post metadata operations
type MetadataRepository interface {
	GetByPost(ctx context.Context, postID uint) (*models.PostMetadata, error)
	Upsert(ctx context.Context, meta *models.PostMetadata) error
	DeleteByPost(ctx context.Context, postID uint) error
}

// metadataRepository implements MetadataRepository
type metadataRepository struct {
	db *gorm.DB
}

// NewMetadataRepository creates a new post metadata repository
func NewMetadataRepository(db *gorm.DB) MetadataRepository {
	return &metadataRepository{db: db}
}

func (r *metadataRepository) GetByPost(ctx context.Context, postID uint) (*models.PostMetadata, error) {
	var meta models.PostMetadata
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&meta).Error
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// Upsert inserts the metadata record or overwrites the existing one for the
// same post. post_id carries a unique index so the conflict target is stable
// on both PostgreSQL and SQLite.
func (r *metadataRepository) Upsert(ctx context.Context, meta *models.PostMetadata) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"metadata", "keywords"}),
		}).
		Create(meta).Error
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, meta.PostID)
	return nil
}

func (r *metadataRepository) DeleteByPost(ctx context.Context, postID uint) error {
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.PostMetadata{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
