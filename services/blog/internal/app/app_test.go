package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"blogdb/pkg/config"
	"blogdb/pkg/logger"
	"blogdb/services/blog/internal/entity"
	"blogdb/services/blog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		SQLitePath:  ":memory:",
		DBLogLevel:  "silent",
		AutoMigrate: true,
	}
	log := logger.NewWithOptions(logger.Options{Writer: &bytes.Buffer{}})

	application, err := New(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })
	return application
}

func TestDuplicateAuthorName(t *testing.T) {
	application := newTestApp(t)
	ctx := context.Background()

	first, err := application.Authors.CreateAuthor(ctx, "Jane Doe", nil)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = application.Authors.CreateAuthor(ctx, "Jane Doe", nil)
	require.Error(t, err)
	assert.True(t, entity.IsValidationError(err))
	assert.Equal(t, entity.MsgNameNotUnique, err.Error())

	_, err = application.Authors.CreateAuthor(ctx, "John Doe", nil)
	assert.NoError(t, err)
}

func TestAuthorWithPostsLifecycle(t *testing.T) {
	application := newTestApp(t)
	ctx := context.Background()

	author, err := application.Authors.CreateAuthor(ctx, "Jane Doe", strPtr("0123456789"))
	require.NoError(t, err)

	post, err := application.Posts.CreatePost(ctx, entity.PostInput{
		Title:    "You Won't Believe This",
		Content:  strings.Repeat("x", entity.MinContentLength),
		Category: string(entity.CategoryFiction),
		AuthorID: &author.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", post.Author.Name)

	loaded, err := application.Authors.GetAuthor(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Posts, 1)
	assert.Equal(t, post.ID, loaded.Posts[0].ID)

	_, err = application.Authors.UpdateAuthor(ctx, author.ID, usecase.AuthorUpdate{Name: strPtr("Jane Doe")})
	assert.NoError(t, err)

	require.NoError(t, application.Authors.DeleteAuthor(ctx, author.ID))

	orphan, err := application.Posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.AuthorID)
	assert.Nil(t, orphan.Author)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{DBDriver: "mysql"}
	log := logger.NewWithOptions(logger.Options{Writer: &bytes.Buffer{}})

	application, err := New(cfg, log)

	assert.Error(t, err)
	assert.Nil(t, application)
}

func strPtr(s string) *string { return &s }
