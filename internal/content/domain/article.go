//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ArticleRepository=ArticleRepository"
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"

	LanguageEnglish = "en"
)

var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

type (
	Article struct {
		ID          ArticleID
		CategoryID  CategoryID
		Title       string
		Slug        string
		Content     string
		Summary     string
		ReadingTime int
		Level       Level
		Language    string
		Tags        []string
		Published   bool
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}

	// ArticleRepository lists articles newest first.
	ArticleRepository interface {
		NextID() ArticleID
		Store(context.Context, *Article) error
		Delete(context.Context, ArticleID) error
		Find(context.Context, FindArticleSpecification) ([]Article, error)
		FindOne(context.Context, FindArticleSpecification) (*Article, error)
	}

	FindArticleSpecification struct {
		IDs            []ArticleID
		CategoryIDs    []CategoryID
		Published      *bool
		TitleOrSlug    string
		TitleOrTag     string
		ExcludeContent bool
	}

	ArticleID struct{ uuid.UUID }

	Level string
)

func (l Level) Valid() bool {
	for _, level := range Levels {
		if l == level {
			return true
		}
	}
	return false
}
