// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an author account. The reference data set has no
// authentication; users exist only as post and comment authors.
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `gorm:"not null" json:"name"`
	// PostsCount is not persisted; computed at query time
	PostsCount int `gorm:"->" json:"posts_count,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->" json:"comments_count,omitempty"`
	Posts         []Post    `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
