// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"log"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var categoryNames = []string{
	"Technology", "Programming", "Design", "Databases", "DevOps",
	"Career", "Productivity", "Open Source",
}

var tagNames = []string{
	"go", "sql", "postgres", "redis", "docker", "kubernetes",
	"testing", "performance", "tutorial", "opinion", "architecture",
	"frontend", "backend", "beginners",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return err
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}

	categories := make([]*models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category, err := f.CreateCategory(name, "Posts about "+name)
		if err != nil {
			return err
		}
		categories = append(categories, category)
	}

	tags := make([]*models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := f.CreateTag(name)
		if err != nil {
			return err
		}
		tags = append(tags, tag)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rng.Intn(len(users))]
		category := categories[f.rng.Intn(len(categories))]
		posts = append(posts, f.BuildPost(author, category))
	}
	if err := f.CreatePostsBatch(posts); err != nil {
		return err
	}

	for _, post := range posts {
		// 0-4 top-level comments, each with a chance of one reply
		for i := 0; i < f.rng.Intn(5); i++ {
			author := users[f.rng.Intn(len(users))]
			comment, err := f.CreateComment(post, author, nil)
			if err != nil {
				return err
			}
			if f.rng.Intn(100) < 40 {
				replier := users[f.rng.Intn(len(users))]
				if _, err := f.CreateComment(post, replier, comment); err != nil {
					return err
				}
			}
		}

		// up to 3 distinct tags per post
		picked := map[int]struct{}{}
		postTags := make([]*models.Tag, 0, 3)
		for i := 0; i < f.rng.Intn(4); i++ {
			idx := f.rng.Intn(len(tags))
			if _, ok := picked[idx]; ok {
				continue
			}
			picked[idx] = struct{}{}
			postTags = append(postTags, tags[idx])
		}
		if err := f.LinkTags(post, postTags); err != nil {
			return err
		}

		// roughly half the posts carry a metadata record
		if f.rng.Intn(100) < 50 {
			keywords := make([]string, 0, 2)
			for _, t := range postTags {
				keywords = append(keywords, t.Name)
			}
			if len(keywords) == 0 {
				keywords = append(keywords, "general")
			}
			if _, err := f.CreateMetadata(post, keywords); err != nil {
				return err
			}
		}
	}

	log.Printf("Seeding complete: %d users, %d categories, %d tags, %d posts",
		len(users), len(categories), len(tags), len(posts))
	return nil
}

// clearData removes all rows in dependency order so foreign keys never block
// the deletes.
func clearData(db *gorm.DB) error {
	tables := []interface{}{
		&models.Comment{},
		&models.PostTag{},
		&models.PostMetadata{},
		&models.Post{},
		&models.Tag{},
		&models.Category{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
