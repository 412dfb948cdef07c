package usecase

import (
	"bytes"
	"context"

	"blogdb/pkg/logger"
	"blogdb/services/blog/internal/entity"
	"blogdb/services/blog/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockAuthorRepository is a mock implementation of AuthorRepository
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) FindByName(ctx context.Context, name string) (*entity.Author, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) Create(ctx context.Context, author *entity.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id uint) (*entity.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) GetWithPosts(ctx context.Context, id uint) (*entity.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) List(ctx context.Context, limit, offset int) ([]*entity.Author, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) Update(ctx context.Context, author *entity.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockAuthorRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ persistent.AuthorRepository = (*MockAuthorRepository)(nil)

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint) (*entity.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int, category entity.Category) ([]*entity.Post, error) {
	args := m.Called(ctx, limit, offset, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Post, error) {
	args := m.Called(ctx, authorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

func newTestLogger() *logger.Logger {
	return logger.NewWithOptions(logger.Options{Writer: &bytes.Buffer{}})
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }
