//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "CategoryRepository=CategoryRepository"
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	Category struct {
		ID          CategoryID
		Title       string
		Slug        string
		Description string
		ImageURL    *string
		Order       int
		IsActive    bool
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}

	// CategoryRepository lists categories by order, then by creation time.
	CategoryRepository interface {
		NextID() CategoryID
		Store(context.Context, *Category) error
		Delete(context.Context, CategoryID) error
		Find(context.Context, FindCategorySpecification) ([]Category, error)
		FindOne(context.Context, FindCategorySpecification) (*Category, error)
	}

	FindCategorySpecification struct {
		IDs        []CategoryID
		Slugs      []string
		ActiveOnly bool
	}

	CategoryID struct{ uuid.UUID }
)
