package models

import "time"

// Post represents a blog article.
//
// ViewCount only ever increases. Deleting a post removes its comments,
// post_tags rows and metadata record; those deletes are issued explicitly in
// a transaction by the repository rather than relying on driver-level cascade
// support (see repository.PostRepository.Delete).
type Post struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Published  bool      `gorm:"not null;default:false" json:"published"`
	ViewCount  int       `gorm:"not null;default:0" json:"view_count"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int           `gorm:"->" json:"comments_count"`
	Comments      []Comment     `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Tags          []Tag         `gorm:"many2many:post_tags" json:"tags,omitempty"`
	Metadata      *PostMetadata `gorm:"foreignKey:PostID" json:"metadata,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PostFilter holds the optional criteria for listing posts. All set fields
// combine with AND; Search matches a case-insensitive substring of either
// title or content. A nil pointer or empty Search means "no restriction".
type PostFilter struct {
	Published  *bool
	AuthorID   *uint
	CategoryID *uint
	Search     string
}
