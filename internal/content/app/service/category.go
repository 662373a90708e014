//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Category=Category"
package service

import (
	"context"
	"fmt"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	"github.com/klwxsrx/content-admin-service/pkg/persistence"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

type (
	Category interface {
		List(context.Context) ([]domain.Category, error)
		ListActive(context.Context) ([]domain.Category, error)
		Get(context.Context, domain.CategoryID) (*domain.Category, error)
		Create(context.Context, CategoryInput) (*domain.Category, error)
		Update(context.Context, domain.CategoryID, CategoryPatch) (*domain.Category, error)
		Delete(context.Context, domain.CategoryID) error
	}

	CategoryInput struct {
		Title       string
		Slug        string
		Description string
		ImageURL    string
		Order       *int
		IsActive    *bool
	}

	// CategoryPatch changes only the non-nil fields, an empty ImageURL clears the image.
	CategoryPatch struct {
		Title       *string
		Slug        *string
		Description *string
		ImageURL    *string
		Order       *int
		IsActive    *bool
	}

	categoryService struct {
		categoryRepo domain.CategoryRepository
		transaction  persistence.Transaction
		clock        pkgtime.Clock
	}
)

func NewCategory(
	categoryRepo domain.CategoryRepository,
	transaction persistence.Transaction,
	clock pkgtime.Clock,
) Category {
	return &categoryService{
		categoryRepo: categoryRepo,
		transaction:  transaction,
		clock:        clock,
	}
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.Find(ctx, domain.FindCategorySpecification{})
}

func (s *categoryService) ListActive(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.Find(ctx, domain.FindCategorySpecification{ActiveOnly: true})
}

func (s *categoryService) Get(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	return s.categoryRepo.FindOne(ctx, domain.FindCategorySpecification{IDs: []domain.CategoryID{id}})
}

func (s *categoryService) Create(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	title, err := requiredText("title", in.Title, categoryTitleMaxLen)
	if err != nil {
		return nil, err
	}
	slug, err := requiredSlug("slug", in.Slug, categorySlugMaxLen)
	if err != nil {
		return nil, err
	}
	description, err := requiredText("description", in.Description, categoryDescriptionMaxLen)
	if err != nil {
		return nil, err
	}
	imageURL, err := optionalText("imageUrl", in.ImageURL, imageURLMaxLen)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now(ctx)
	category := &domain.Category{
		ID:          s.categoryRepo.NextID(),
		Title:       title,
		Slug:        slug,
		Description: description,
		ImageURL:    imageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Order != nil {
		category.Order = *in.Order
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	err = s.categoryRepo.Store(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("store category: %w", err)
	}

	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id domain.CategoryID, patch CategoryPatch) (*domain.Category, error) {
	apply, err := s.validatePatch(patch)
	if err != nil {
		return nil, err
	}

	return persistence.WithinTransaction(ctx, s.transaction, func(ctx context.Context) (*domain.Category, error) {
		category, err := s.categoryRepo.FindOne(
			s.transaction.WithLock(ctx),
			domain.FindCategorySpecification{IDs: []domain.CategoryID{id}},
		)
		if err != nil {
			return nil, err
		}

		apply(category)
		category.UpdatedAt = s.clock.Now(ctx)

		err = s.categoryRepo.Store(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("store category: %w", err)
		}

		return category, nil
	})
}

func (s *categoryService) Delete(ctx context.Context, id domain.CategoryID) error {
	return s.categoryRepo.Delete(ctx, id)
}

func (s *categoryService) validatePatch(patch CategoryPatch) (func(*domain.Category), error) {
	var (
		title, slug, description string
		imageURL                 *string
		err                      error
	)
	if patch.Title != nil {
		if title, err = requiredText("title", *patch.Title, categoryTitleMaxLen); err != nil {
			return nil, err
		}
	}
	if patch.Slug != nil {
		if slug, err = requiredSlug("slug", *patch.Slug, categorySlugMaxLen); err != nil {
			return nil, err
		}
	}
	if patch.Description != nil {
		if description, err = requiredText("description", *patch.Description, categoryDescriptionMaxLen); err != nil {
			return nil, err
		}
	}
	if patch.ImageURL != nil {
		if imageURL, err = optionalText("imageUrl", *patch.ImageURL, imageURLMaxLen); err != nil {
			return nil, err
		}
	}

	return func(category *domain.Category) {
		if patch.Title != nil {
			category.Title = title
		}
		if patch.Slug != nil {
			category.Slug = slug
		}
		if patch.Description != nil {
			category.Description = description
		}
		if patch.ImageURL != nil {
			category.ImageURL = imageURL
		}
		if patch.Order != nil {
			category.Order = *patch.Order
		}
		if patch.IsActive != nil {
			category.IsActive = *patch.IsActive
		}
	}, nil
}
