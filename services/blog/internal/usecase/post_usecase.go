package usecase

import (
	"context"
	"errors"
	"fmt"

	"blogdb/pkg/logger"
	"blogdb/services/blog/internal/entity"
	"blogdb/services/blog/internal/repo/persistent"
)

// PostUpdate carries the fields to change. Nil fields are left as is.
type PostUpdate struct {
	Title        *string
	Summary      *string
	ClearSummary bool
	Content      *string
	Category     *string
	AuthorID     *uint
	ClearAuthor  bool
}

type PostUseCase interface {
	CreatePost(ctx context.Context, in entity.PostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, id uint, update PostUpdate) (*entity.Post, error)
	GetPost(ctx context.Context, id uint) (*entity.Post, error)
	ListPosts(ctx context.Context, category string, limit, offset int) ([]*entity.Post, error)
	ListAuthorPosts(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Post, error)
	DeletePost(ctx context.Context, id uint) error
}

type postUseCase struct {
	postRepo   persistent.PostRepository
	authorRepo persistent.AuthorRepository
	logger     *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, authorRepo persistent.AuthorRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo:   postRepo,
		authorRepo: authorRepo,
		logger:     logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, in entity.PostInput) (*entity.Post, error) {
	post, err := entity.NewPost(in)
	if err != nil {
		return nil, err
	}

	author, err := uc.resolveAuthor(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	post.Author = author

	uc.logger.Info("Post created: id=%d", post.ID)
	return post, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, id uint, update PostUpdate) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		if err := post.SetTitle(*update.Title); err != nil {
			return nil, err
		}
	}
	switch {
	case update.ClearSummary:
		post.Summary = nil
	case update.Summary != nil:
		if err := post.SetSummary(update.Summary); err != nil {
			return nil, err
		}
	}
	if update.Content != nil {
		if err := post.SetContent(*update.Content); err != nil {
			return nil, err
		}
	}
	if update.Category != nil {
		if err := post.SetCategory(*update.Category); err != nil {
			return nil, err
		}
	}
	switch {
	case update.ClearAuthor:
		post.SetAuthorID(nil)
	case update.AuthorID != nil:
		author, err := uc.resolveAuthor(ctx, update.AuthorID)
		if err != nil {
			return nil, err
		}
		post.SetAuthorID(update.AuthorID)
		post.Author = author
	}

	if err := uc.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, entity.ErrPostNotFound) {
			return nil, err
		}
		uc.logger.Error("Failed to update post %d: %v", id, err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, id uint) (*entity.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

// ListPosts filters by category when one is given; an unknown category is
// rejected the same way it would be on write.
func (uc *postUseCase) ListPosts(ctx context.Context, category string, limit, offset int) ([]*entity.Post, error) {
	if category != "" {
		if err := entity.ValidateCategory(category); err != nil {
			return nil, err
		}
	}
	return uc.postRepo.List(ctx, limit, offset, entity.Category(category))
}

func (uc *postUseCase) ListAuthorPosts(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Post, error) {
	if _, err := uc.authorRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	return uc.postRepo.ListByAuthor(ctx, authorID, limit, offset)
}

func (uc *postUseCase) DeletePost(ctx context.Context, id uint) error {
	if err := uc.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrPostNotFound) {
			return err
		}
		uc.logger.Error("Failed to delete post %d: %v", id, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (uc *postUseCase) resolveAuthor(ctx context.Context, authorID *uint) (*entity.Author, error) {
	if authorID == nil {
		return nil, nil
	}
	author, err := uc.authorRepo.GetByID(ctx, *authorID)
	if err != nil {
		if !errors.Is(err, entity.ErrAuthorNotFound) {
			uc.logger.Error("Failed to load author %d: %v", *authorID, err)
		}
		return nil, err
	}
	return author, nil
}
