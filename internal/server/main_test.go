package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// envelope mirrors the JSON response shape for assertions.
type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
	Message    string             `json:"message"`
	Error      string             `json:"error"`
	Code       string             `json:"code"`
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: sees a different database, and the
	// foreign key pragma is per-connection anyway.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{Port: "0", Env: "test"}
	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app, db
}

type webFixture struct {
	author   models.User
	category models.Category
	goTag    models.Tag
	dbTag    models.Tag
}

func seedWebFixture(t *testing.T, db *gorm.DB) webFixture {
	t.Helper()
	f := webFixture{
		author:   models.User{Email: "author@example.com", Name: "Author"},
		category: models.Category{Name: "Technology"},
		goTag:    models.Tag{Name: "go"},
		dbTag:    models.Tag{Name: "databases"},
	}
	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&f.author).Error)
	require.NoError(t, db.WithContext(ctx).Create(&f.category).Error)
	require.NoError(t, db.WithContext(ctx).Create(&f.goTag).Error)
	require.NoError(t, db.WithContext(ctx).Create(&f.dbTag).Error)
	return f
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}
