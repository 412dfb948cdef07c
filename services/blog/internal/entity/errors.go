package entity

import "errors"

const (
	MsgNameRequired      = "Author must have a name"
	MsgNameNotUnique     = "Author name must be unique"
	MsgPhoneNumber       = "Phone number must be exactly 10 digits"
	MsgTitleNotClickbait = "Title is not clickbait-y enough"
	MsgSummaryTooLong    = "Summary must be at most 250 characters long"
	MsgContentTooShort   = "Content must be at least 250 characters long"
	MsgCategory          = "Category must be Fiction or Non-Fiction"
)

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrPostNotFound   = errors.New("post not found")
)

// ValidationError reports a field value rejected before it was assigned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
