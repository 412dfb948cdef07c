package entity

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Lengths are counted in runes.
const (
	PhoneNumberLength = 10
	MaxSummaryLength  = 250
	MinContentLength  = 250
)

// ClickbaitPhrases lists the markers a post title must contain at least one of.
var ClickbaitPhrases = []string{"Won't Believe", "Secret", "Top", "Guess"}

func check(field string, value interface{}, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return newValidationError(field, err.Error())
	}
	return nil
}

func notBlank(message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	})
}

func digitsOfLength(n int, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if utf8.RuneCountInString(s) != n {
			return errors.New(message)
		}
		for _, r := range s {
			if !unicode.IsDigit(r) {
				return errors.New(message)
			}
		}
		return nil
	})
}

func containsAny(phrases []string, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		for _, phrase := range phrases {
			if strings.Contains(s, phrase) {
				return nil
			}
		}
		return errors.New(message)
	})
}
