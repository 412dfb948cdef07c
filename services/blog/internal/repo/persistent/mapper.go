package persistent

import (
	"blogdb/services/blog/internal/entity"
	"blogdb/services/blog/internal/model"
)

func ToAuthorEntity(m *model.AuthorModel) *entity.Author {
	if m == nil {
		return nil
	}

	author := &entity.Author{
		ID:          m.ID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if len(m.Posts) > 0 {
		author.Posts = make([]*entity.Post, len(m.Posts))
		for i := range m.Posts {
			author.Posts[i] = ToPostEntity(&m.Posts[i])
		}
	}
	return author
}

// ToAuthorModel never carries Posts; associations are written by their own repository.
func ToAuthorModel(e *entity.Author) *model.AuthorModel {
	if e == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:          e.ID,
		Name:        e.Name,
		PhoneNumber: e.PhoneNumber,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		Title:     m.Title,
		Summary:   m.Summary,
		Content:   m.Content,
		Category:  entity.Category(m.Category),
		AuthorID:  m.AuthorID,
		Author:    ToAuthorEntity(m.Author),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		Title:     e.Title,
		Summary:   e.Summary,
		Content:   e.Content,
		Category:  string(e.Category),
		AuthorID:  e.AuthorID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
