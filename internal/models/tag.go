package models

import "time"

// Tag labels posts N:M through the post_tags join table.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	// PostsCount is not persisted; computed at query time (usage count)
	PostsCount int       `gorm:"->" json:"posts_count,omitempty"`
	Posts      []Post    `gorm:"many2many:post_tags" json:"posts,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostTag is a join-table row associating one Post with one Tag. The composite
// primary key guarantees a pair appears at most once. The association fields
// carry the foreign-key constraints; Migrate registers this struct as the
// many2many join table so they end up in the CREATE TABLE statement.
type PostTag struct {
	PostID uint  `gorm:"primaryKey" json:"post_id"`
	TagID  uint  `gorm:"primaryKey" json:"tag_id"`
	Post   *Post `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Tag    *Tag  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
