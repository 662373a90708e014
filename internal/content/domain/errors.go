package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrArticleNotFound  = errors.New("article not found")
	ErrTrackNotFound    = errors.New("track not found")
)

// DuplicateKeyError is returned by repositories when a unique key is already taken.
type DuplicateKeyError struct {
	Key   string
	Value string
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %s=%q", e.Key, e.Value)
}
