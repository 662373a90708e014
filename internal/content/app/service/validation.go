package service

import (
	"strings"

	pkgstrings "github.com/klwxsrx/content-admin-service/pkg/strings"
)

const (
	categoryTitleMaxLen       = 120
	categorySlugMaxLen        = 64
	categoryDescriptionMaxLen = 500
	imageURLMaxLen            = 500

	articleTitleMaxLen   = 140
	articleSlugMaxLen    = 80
	articleSummaryMaxLen = 500
	tagMaxLen            = 32

	trackTitleMaxLen    = 140
	trackAudioURLMaxLen = 500

	deviceIDMinLen = 4
	deviceIDMaxLen = 128
)

func requiredText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || pkgstrings.RuneLen(value) > maxLen {
		return "", FieldError{Field: field}
	}

	return value, nil
}

func requiredSlug(field, value string, maxLen int) (string, error) {
	return requiredText(field, strings.ToLower(value), maxLen)
}

// optionalText returns nil for blank values.
func optionalText(field, value string, maxLen int) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if pkgstrings.RuneLen(value) > maxLen {
		return nil, FieldError{Field: field}
	}

	return &value, nil
}

func positive(field string, value int) (int, error) {
	if value <= 0 {
		return 0, FieldError{Field: field}
	}

	return value, nil
}

// NormalizeTags lowercases and trims tags, dropping blank and too long ones.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || pkgstrings.RuneLen(tag) > tagMaxLen {
			continue
		}
		result = append(result, tag)
	}

	return result
}
