package models

// PostMetadata is an optional 1:1 record owned by a post. Metadata carries a
// free-form JSON document (reading time, SEO fields and the like); Keywords is
// a JSON-encoded string array. Both are stored as text so the model works
// against Postgres and the SQLite test database alike.
type PostMetadata struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PostID   uint   `gorm:"uniqueIndex;not null" json:"post_id"`
	Metadata string `gorm:"type:text" json:"metadata,omitempty"`
	Keywords string `gorm:"type:text" json:"keywords,omitempty"`
}
