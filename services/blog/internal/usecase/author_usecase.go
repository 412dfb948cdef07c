package usecase

import (
	"context"
	"errors"
	"fmt"

	"blogdb/pkg/logger"
	"blogdb/services/blog/internal/entity"
	"blogdb/services/blog/internal/repo/persistent"
)

// AuthorUpdate carries the fields to change. Nil fields are left as is;
// ClearPhoneNumber removes the phone number.
type AuthorUpdate struct {
	Name             *string
	PhoneNumber      *string
	ClearPhoneNumber bool
}

type AuthorUseCase interface {
	CreateAuthor(ctx context.Context, name string, phoneNumber *string) (*entity.Author, error)
	UpdateAuthor(ctx context.Context, id uint, update AuthorUpdate) (*entity.Author, error)
	GetAuthor(ctx context.Context, id uint) (*entity.Author, error)
	ListAuthors(ctx context.Context, limit, offset int) ([]*entity.Author, error)
	DeleteAuthor(ctx context.Context, id uint) error
}

type authorUseCase struct {
	authorRepo persistent.AuthorRepository
	logger     *logger.Logger
}

func NewAuthorUseCase(authorRepo persistent.AuthorRepository, logger *logger.Logger) AuthorUseCase {
	return &authorUseCase{
		authorRepo: authorRepo,
		logger:     logger,
	}
}

func (uc *authorUseCase) CreateAuthor(ctx context.Context, name string, phoneNumber *string) (*entity.Author, error) {
	author, err := entity.NewAuthor(ctx, uc.authorRepo, name, phoneNumber)
	if err != nil {
		return nil, err
	}

	if err := uc.authorRepo.Create(ctx, author); err != nil {
		if entity.IsValidationError(err) {
			return nil, err
		}
		uc.logger.Error("Failed to create author: %v", err)
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	uc.logger.Info("Author created: id=%d", author.ID)
	return author, nil
}

func (uc *authorUseCase) UpdateAuthor(ctx context.Context, id uint, update AuthorUpdate) (*entity.Author, error) {
	author, err := uc.authorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if err := author.SetName(ctx, uc.authorRepo, *update.Name); err != nil {
			return nil, err
		}
	}
	switch {
	case update.ClearPhoneNumber:
		author.PhoneNumber = nil
	case update.PhoneNumber != nil:
		if err := author.SetPhoneNumber(update.PhoneNumber); err != nil {
			return nil, err
		}
	}

	if err := uc.authorRepo.Update(ctx, author); err != nil {
		if entity.IsValidationError(err) || errors.Is(err, entity.ErrAuthorNotFound) {
			return nil, err
		}
		uc.logger.Error("Failed to update author %d: %v", id, err)
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return author, nil
}

func (uc *authorUseCase) GetAuthor(ctx context.Context, id uint) (*entity.Author, error) {
	return uc.authorRepo.GetWithPosts(ctx, id)
}

func (uc *authorUseCase) ListAuthors(ctx context.Context, limit, offset int) ([]*entity.Author, error) {
	return uc.authorRepo.List(ctx, limit, offset)
}

func (uc *authorUseCase) DeleteAuthor(ctx context.Context, id uint) error {
	if err := uc.authorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrAuthorNotFound) {
			return err
		}
		uc.logger.Error("Failed to delete author %d: %v", id, err)
		return fmt.Errorf("failed to delete author: %w", err)
	}

	uc.logger.Info("Author deleted: id=%d", id)
	return nil
}
