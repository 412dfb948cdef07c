package persistent

import (
	"context"
	"errors"

	"blogdb/services/blog/internal/entity"
	"blogdb/services/blog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id uint) (*entity.Post, error)
	List(ctx context.Context, limit, offset int, category entity.Category) ([]*entity.Post, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, category entity.Category) ([]*entity.Post, error) {
	query := r.db.WithContext(ctx).Preload("Author").Order("id ASC")
	if category != "" {
		query = query.Where("category = ?", string(category))
	}
	return r.find(query, limit, offset)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Post, error) {
	query := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id ASC")
	return r.find(query, limit, offset)
}

func (r *postRepository) find(query *gorm.DB, limit, offset int) ([]*entity.Post, error) {
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var postModels []model.PostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Update writes the mutable columns of an existing post. A missing row is
// reported as ErrPostNotFound and never inserted.
func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	if post.ID == 0 {
		return entity.ErrPostNotFound
	}

	postModel := ToPostModel(post)
	result := r.db.WithContext(ctx).
		Model(postModel).
		Select("title", "summary", "content", "category", "author_id", "updated_at").
		Updates(postModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	author := post.Author
	*post = *ToPostEntity(postModel)
	if author != nil && post.AuthorID != nil && author.ID == *post.AuthorID {
		post.Author = author
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}
