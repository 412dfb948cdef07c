package entity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Author struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Posts       []*Post   `json:"posts,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthorLookup finds an author by exact name. It returns ErrAuthorNotFound
// when no author carries the name.
type AuthorLookup interface {
	FindByName(ctx context.Context, name string) (*Author, error)
}

func NewAuthor(ctx context.Context, lookup AuthorLookup, name string, phoneNumber *string) (*Author, error) {
	a := &Author{}
	if err := a.SetName(ctx, lookup, name); err != nil {
		return nil, err
	}
	if err := a.SetPhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	return a, nil
}

// SetName validates name against the current storage state and assigns the
// trimmed value. Renaming an author to its own current name is allowed.
func (a *Author) SetName(ctx context.Context, lookup AuthorLookup, name string) error {
	trimmed, err := validateName(ctx, lookup, name, a.ID)
	if err != nil {
		return err
	}
	a.Name = trimmed
	return nil
}

func (a *Author) SetPhoneNumber(phoneNumber *string) error {
	if err := ValidatePhoneNumber(phoneNumber); err != nil {
		return err
	}
	a.PhoneNumber = phoneNumber
	return nil
}

func (a *Author) HasPhoneNumber() bool {
	return a.PhoneNumber != nil
}

// ValidateName returns the trimmed name if it is non-blank and not taken.
func ValidateName(ctx context.Context, lookup AuthorLookup, name string) (string, error) {
	return validateName(ctx, lookup, name, 0)
}

func validateName(ctx context.Context, lookup AuthorLookup, name string, selfID uint) (string, error) {
	if err := CheckNameFormat(name); err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(name)

	existing, err := lookup.FindByName(ctx, trimmed)
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return trimmed, nil
	case err != nil:
		return "", fmt.Errorf("failed to check author name: %w", err)
	case existing != nil && (selfID == 0 || existing.ID != selfID):
		return "", newValidationError("name", MsgNameNotUnique)
	}
	return trimmed, nil
}

// CheckNameFormat is the storage independent part of name validation.
func CheckNameFormat(name string) error {
	return check("name", name,
		validation.Required.Error(MsgNameRequired),
		notBlank(MsgNameRequired),
	)
}

// ValidatePhoneNumber accepts nil, or exactly ten decimal digits.
func ValidatePhoneNumber(phoneNumber *string) error {
	if phoneNumber == nil {
		return nil
	}
	return check("phone_number", *phoneNumber,
		digitsOfLength(PhoneNumberLength, MsgPhoneNumber),
	)
}
