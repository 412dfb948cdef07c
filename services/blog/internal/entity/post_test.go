package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() PostInput {
	return PostInput{
		Title:    "You Won't Believe This Story",
		Summary:  strPtr("A short summary."),
		Content:  strings.Repeat("a", MinContentLength),
		Category: "Fiction",
	}
}

func TestNewPost_Success(t *testing.T) {
	authorID := uint(4)
	in := validInput()
	in.AuthorID = &authorID

	post, err := NewPost(in)

	require.NoError(t, err)
	assert.Equal(t, in.Title, post.Title)
	assert.Equal(t, CategoryFiction, post.Category)
	assert.Equal(t, uint(4), *post.AuthorID)
	assert.NoError(t, post.ValidateFields())
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		title string
		valid bool
	}{
		{"Top 10 Secrets", true},
		{"You Won't Believe What Happened", true},
		{"The Secret Life of Cats", true},
		{"Guess Who Is Back", true},
		{"Topical", true},
		{"A Great Day", false},
		{"", false},
		{"   ", false},
		{"top 10 secrets", false},
		{"You Wont Believe It", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assertValidationError(t, err, "title", MsgTitleNotClickbait)
		})
	}
}

func TestValidateContent(t *testing.T) {
	assertValidationError(t, ValidateContent(""), "content", MsgContentTooShort)
	assertValidationError(t, ValidateContent(strings.Repeat("x", 249)), "content", MsgContentTooShort)
	assert.NoError(t, ValidateContent(strings.Repeat("x", 250)))
	assert.NoError(t, ValidateContent(strings.Repeat("x", 5000)))
}

func TestValidateContent_CountsCharactersNotBytes(t *testing.T) {
	// 249 two-byte runes is 498 bytes but still too short.
	assert.Error(t, ValidateContent(strings.Repeat("é", 249)))
	assert.NoError(t, ValidateContent(strings.Repeat("é", 250)))
}

func TestValidateSummary(t *testing.T) {
	assert.NoError(t, ValidateSummary(nil))
	assert.NoError(t, ValidateSummary(strPtr("")))
	assert.NoError(t, ValidateSummary(strPtr(strings.Repeat("s", 250))))
	assertValidationError(t, ValidateSummary(strPtr(strings.Repeat("s", 251))), "summary", MsgSummaryTooLong)
	assert.NoError(t, ValidateSummary(strPtr(strings.Repeat("ü", 250))))
}

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("Fiction"))
	assert.NoError(t, ValidateCategory("Non-Fiction"))

	for _, category := range []string{"fiction", "non-fiction", "NonFiction", " Fiction", "Fiction ", "", "Poetry"} {
		assertValidationError(t, ValidateCategory(category), "category", MsgCategory)
	}
}

func TestNewPost_FailsOnInvalidField(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *PostInput)
		field   string
		message string
	}{
		{"title", func(in *PostInput) { in.Title = "A Great Day" }, "title", MsgTitleNotClickbait},
		{"summary", func(in *PostInput) { in.Summary = strPtr(strings.Repeat("s", 251)) }, "summary", MsgSummaryTooLong},
		{"content", func(in *PostInput) { in.Content = "too short" }, "content", MsgContentTooShort},
		{"category", func(in *PostInput) { in.Category = "fiction" }, "category", MsgCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			post, err := NewPost(in)

			assert.Nil(t, post)
			assertValidationError(t, err, tt.field, tt.message)
		})
	}
}

func TestPostSetters_RejectedKeepsPriorState(t *testing.T) {
	post, err := NewPost(validInput())
	require.NoError(t, err)
	before := *post

	assert.Error(t, post.SetTitle("Nothing to see here"))
	assert.Error(t, post.SetSummary(strPtr(strings.Repeat("s", 300))))
	assert.Error(t, post.SetContent("short"))
	assert.Error(t, post.SetCategory("Poetry"))

	assert.Equal(t, before, *post)
}

func TestPostSetters_Accepted(t *testing.T) {
	post, err := NewPost(validInput())
	require.NoError(t, err)

	require.NoError(t, post.SetTitle("Top Picks"))
	require.NoError(t, post.SetSummary(nil))
	require.NoError(t, post.SetCategory("Non-Fiction"))

	assert.Equal(t, "Top Picks", post.Title)
	assert.Nil(t, post.Summary)
	assert.Equal(t, CategoryNonFiction, post.Category)
}

func TestSetAuthorID_DropsStaleAuthor(t *testing.T) {
	first, second := uint(1), uint(2)
	post := &Post{AuthorID: &first, Author: &Author{ID: first, Name: "Jane Doe"}}

	post.SetAuthorID(&first)
	assert.NotNil(t, post.Author)

	post.SetAuthorID(&second)
	assert.Nil(t, post.Author)
	assert.Equal(t, second, *post.AuthorID)

	post.SetAuthorID(nil)
	assert.Nil(t, post.AuthorID)
}

func TestValidateFields_CatchesDirectWrites(t *testing.T) {
	post, err := NewPost(validInput())
	require.NoError(t, err)

	post.Category = "poetry"

	assertValidationError(t, post.ValidateFields(), "category", MsgCategory)
}
