package repository

import (
	"testing"

	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	// Every pooled connection to :memory: sees a different database, and the
	// pragma below is per-connection anyway.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// Foreign keys are off by default in SQLite.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

// fixture holds the standard data set the repository tests build on.
type fixture struct {
	alice, bob   *models.User
	tech, life   *models.Category
	goTag, dbTag *models.Tag
	webTag       *models.Tag
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{
		alice:  &models.User{Email: "alice@example.com", Name: "Alice"},
		bob:    &models.User{Email: "bob@example.com", Name: "Bob"},
		tech:   &models.Category{Name: "Technology"},
		life:   &models.Category{Name: "Lifestyle"},
		goTag:  &models.Tag{Name: "go"},
		dbTag:  &models.Tag{Name: "databases"},
		webTag: &models.Tag{Name: "web"},
	}
	for _, v := range []interface{}{f.alice, f.bob, f.tech, f.life, f.goTag, f.dbTag, f.webTag} {
		require.NoError(t, db.Create(v).Error)
	}
	return f
}
