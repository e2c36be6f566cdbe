package models

import "time"

// Comment is a remark on a post. Comments form a two-level tree: a top-level
// comment has a nil ParentID, a reply points at a top-level comment. Replies
// of replies are not allowed; the API never loads more than one level.
type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Content  string `gorm:"type:text;not null" json:"content"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	Post     *Post  `gorm:"foreignKey:PostID" json:"post,omitempty"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	ParentID *uint  `gorm:"index" json:"parent_id,omitempty"`
	// Replies holds the one level of child comments, oldest first.
	Replies   []Comment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
