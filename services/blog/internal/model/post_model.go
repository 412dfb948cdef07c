package model

import (
	"time"

	"blogdb/services/blog/internal/entity"

	"gorm.io/gorm"
)

type PostModel struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Title     string       `json:"title"`
	Summary   *string      `json:"summary"`
	Content   string       `gorm:"type:text" json:"content"`
	Category  string       `json:"category"`
	AuthorID  *uint        `gorm:"index" json:"author_id"`
	Author    *AuthorModel `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeSave(tx *gorm.DB) error {
	post := entity.Post{
		Title:    p.Title,
		Summary:  p.Summary,
		Content:  p.Content,
		Category: entity.Category(p.Category),
	}
	return post.ValidateFields()
}
