package entity

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Category string

const (
	CategoryFiction    Category = "Fiction"
	CategoryNonFiction Category = "Non-Fiction"
)

type Post struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Summary   *string   `json:"summary,omitempty"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	AuthorID  *uint     `json:"author_id,omitempty"`
	Author    *Author   `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostInput struct {
	Title    string
	Summary  *string
	Content  string
	Category string
	AuthorID *uint
}

// NewPost builds a post from caller values, failing on the first rejected field.
func NewPost(in PostInput) (*Post, error) {
	p := &Post{}
	if err := p.SetTitle(in.Title); err != nil {
		return nil, err
	}
	if err := p.SetSummary(in.Summary); err != nil {
		return nil, err
	}
	if err := p.SetContent(in.Content); err != nil {
		return nil, err
	}
	if err := p.SetCategory(in.Category); err != nil {
		return nil, err
	}
	p.SetAuthorID(in.AuthorID)
	return p, nil
}

func (p *Post) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	p.Title = title
	return nil
}

func (p *Post) SetSummary(summary *string) error {
	if err := ValidateSummary(summary); err != nil {
		return err
	}
	p.Summary = summary
	return nil
}

func (p *Post) SetContent(content string) error {
	if err := ValidateContent(content); err != nil {
		return err
	}
	p.Content = content
	return nil
}

func (p *Post) SetCategory(category string) error {
	if err := ValidateCategory(category); err != nil {
		return err
	}
	p.Category = Category(category)
	return nil
}

// SetAuthorID links or, with nil, unlinks the post. Existence of the
// author is a storage concern checked by the use case.
func (p *Post) SetAuthorID(authorID *uint) {
	p.AuthorID = authorID
	if p.Author != nil && (authorID == nil || p.Author.ID != *authorID) {
		p.Author = nil
	}
}

func ValidateTitle(title string) error {
	return check("title", title,
		validation.Required.Error(MsgTitleNotClickbait),
		containsAny(ClickbaitPhrases, MsgTitleNotClickbait),
	)
}

func ValidateSummary(summary *string) error {
	if summary == nil {
		return nil
	}
	return check("summary", *summary,
		validation.RuneLength(0, MaxSummaryLength).Error(MsgSummaryTooLong),
	)
}

func ValidateContent(content string) error {
	return check("content", content,
		validation.Required.Error(MsgContentTooShort),
		validation.RuneLength(MinContentLength, 0).Error(MsgContentTooShort),
	)
}

func ValidateCategory(category string) error {
	return check("category", category,
		validation.Required.Error(MsgCategory),
		validation.In(string(CategoryFiction), string(CategoryNonFiction)).Error(MsgCategory),
	)
}

// ValidateFields re-runs every post rule against the current values.
func (p *Post) ValidateFields() error {
	if err := ValidateTitle(p.Title); err != nil {
		return err
	}
	if err := ValidateSummary(p.Summary); err != nil {
		return err
	}
	if err := ValidateContent(p.Content); err != nil {
		return err
	}
	return ValidateCategory(string(p.Category))
}
