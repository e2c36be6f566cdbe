package models

import "time"

// Category groups posts 1:N. Deleting a category removes its posts.
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description,omitempty"`
	// PostsCount is not persisted; computed at query time
	PostsCount int       `gorm:"->" json:"posts_count,omitempty"`
	Posts      []Post    `gorm:"foreignKey:CategoryID" json:"posts,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
