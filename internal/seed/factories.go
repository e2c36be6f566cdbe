// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email: fmt.Sprintf("%d.%s", gofakeit.Number(100, 999), gofakeit.Email()),
		Name:  gofakeit.Name(),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory persists a category with the given name.
func (f *Factory) CreateCategory(name, description string) (*models.Category, error) {
	category := &models.Category{Name: name, Description: description}
	if err := f.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreateTag persists a tag with the given name.
func (f *Factory) CreateTag(name string) (*models.Tag, error) {
	tag := &models.Tag{Name: name}
	if err := f.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// BuildPost constructs a post struct without persisting it. Useful for
// batching. Creation timestamps are spread over the past 90 days so ordering
// and ranking queries have realistic data to work with.
func (f *Factory) BuildPost(author *models.User, category *models.Category, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		Title:      gofakeit.Sentence(5),
		Content:    gofakeit.Paragraph(2, 4, 8, "\n"),
		Published:  f.rng.Intn(100) < 70,
		ViewCount:  f.rng.Intn(5000),
		AuthorID:   author.ID,
		CategoryID: category.ID,
	}

	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment persists a comment; parent may be nil for a top-level comment.
func (f *Factory) CreateComment(post *models.Post, author *models.User, parent *models.Comment) (*models.Comment, error) {
	comment := &models.Comment{
		Content:  gofakeit.Sentence(12),
		PostID:   post.ID,
		AuthorID: author.ID,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// LinkTags attaches the given tags to the post.
func (f *Factory) LinkTags(post *models.Post, tags []*models.Tag) error {
	for _, tag := range tags {
		link := models.PostTag{PostID: post.ID, TagID: tag.ID}
		if err := f.db.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateMetadata persists a metadata record for the post with a generated
// JSON document and keyword list.
func (f *Factory) CreateMetadata(post *models.Post, keywords []string) (*models.PostMetadata, error) {
	doc := map[string]interface{}{
		"readingTime": f.rng.Intn(20) + 1,
		"featured":    f.rng.Intn(100) < 20,
		"seo": map[string]string{
			"title":       post.Title,
			"description": gofakeit.Sentence(10),
		},
	}
	rawDoc, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	rawKeywords, err := json.Marshal(keywords)
	if err != nil {
		return nil, err
	}

	meta := &models.PostMetadata{
		PostID:   post.ID,
		Metadata: string(rawDoc),
		Keywords: string(rawKeywords),
	}
	if err := f.db.Create(meta).Error; err != nil {
		return nil, err
	}
	return meta, nil
}
