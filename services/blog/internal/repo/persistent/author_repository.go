package persistent

import (
	"context"
	"errors"
	"strings"

	"blogdb/services/blog/internal/entity"
	"blogdb/services/blog/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const pgUniqueViolation = "23505"

type AuthorRepository interface {
	entity.AuthorLookup

	Create(ctx context.Context, author *entity.Author) error
	GetByID(ctx context.Context, id uint) (*entity.Author, error)
	GetWithPosts(ctx context.Context, id uint) (*entity.Author, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Author, error)
	Update(ctx context.Context, author *entity.Author) error
	Delete(ctx context.Context, id uint) error
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	authorModel := ToAuthorModel(author)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(authorModel).Error; err != nil {
		return translateAuthorError(err)
	}
	*author = *ToAuthorEntity(authorModel)
	return nil
}

func (r *authorRepository) GetByID(ctx context.Context, id uint) (*entity.Author, error) {
	var authorModel model.AuthorModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&authorModel).Error; err != nil {
		return nil, translateAuthorError(err)
	}
	return ToAuthorEntity(&authorModel), nil
}

func (r *authorRepository) GetWithPosts(ctx context.Context, id uint) (*entity.Author, error) {
	var authorModel model.AuthorModel
	if err := r.db.WithContext(ctx).Preload("Posts", func(db *gorm.DB) *gorm.DB {
		return db.Order("posts.id ASC")
	}).Where("id = ?", id).First(&authorModel).Error; err != nil {
		return nil, translateAuthorError(err)
	}
	return ToAuthorEntity(&authorModel), nil
}

// FindByName runs a fresh exact-match query on every call.
func (r *authorRepository) FindByName(ctx context.Context, name string) (*entity.Author, error) {
	var authorModel model.AuthorModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&authorModel).Error; err != nil {
		return nil, translateAuthorError(err)
	}
	return ToAuthorEntity(&authorModel), nil
}

func (r *authorRepository) List(ctx context.Context, limit, offset int) ([]*entity.Author, error) {
	var authorModels []model.AuthorModel
	query := r.db.WithContext(ctx).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&authorModels).Error; err != nil {
		return nil, err
	}

	authors := make([]*entity.Author, len(authorModels))
	for i := range authorModels {
		authors[i] = ToAuthorEntity(&authorModels[i])
	}
	return authors, nil
}

// Update writes the mutable columns of an existing author. A missing row is
// reported as ErrAuthorNotFound and never inserted.
func (r *authorRepository) Update(ctx context.Context, author *entity.Author) error {
	if author.ID == 0 {
		return entity.ErrAuthorNotFound
	}

	authorModel := ToAuthorModel(author)
	result := r.db.WithContext(ctx).
		Model(authorModel).
		Select("name", "phone_number", "updated_at").
		Updates(authorModel)
	if result.Error != nil {
		return translateAuthorError(result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrAuthorNotFound
	}
	*author = *ToAuthorEntity(authorModel)
	return nil
}

// Delete detaches the author's posts and removes the author in one transaction.
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PostModel{}).
			Where("author_id = ?", id).
			UpdateColumn("author_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.AuthorModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrAuthorNotFound
		}
		return nil
	})
}

func translateAuthorError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.ErrAuthorNotFound
	case isUniqueViolation(err):
		return &entity.ValidationError{Field: "name", Message: entity.MsgNameNotUnique}
	default:
		return err
	}
}

// isUniqueViolation also matches untranslated driver messages.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
