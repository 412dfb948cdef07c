package model

import (
	"time"

	"blogdb/services/blog/internal/entity"

	"gorm.io/gorm"
)

type AuthorModel struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null;uniqueIndex:idx_authors_name" json:"name"`
	PhoneNumber *string     `json:"phone_number"`
	Posts       []PostModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"posts,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// BeforeSave rejects rows that bypassed the entity setters. Uniqueness is
// left to the lookup and the unique index.
func (a *AuthorModel) BeforeSave(tx *gorm.DB) error {
	if err := entity.CheckNameFormat(a.Name); err != nil {
		return err
	}
	return entity.ValidatePhoneNumber(a.PhoneNumber)
}
