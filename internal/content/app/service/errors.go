package service

import (
	"errors"
	"fmt"
)

var ErrAIGeneratedImmutable = errors.New("isAiGenerated must remain true")

// FieldError reports an input field that failed validation.
type FieldError struct {
	Field string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("invalid field %s", e.Field)
}

// CategoryNotFoundError is returned when an article refers to an unknown category slug.
type CategoryNotFoundError struct {
	Slug string
}

func (e CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %q not found", e.Slug)
}
