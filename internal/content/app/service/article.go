//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Article=Article"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	"github.com/klwxsrx/content-admin-service/pkg/persistence"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

type (
	Article interface {
		List(context.Context, ArticleFilter) ([]domain.Article, error)
		ListPublishedByCategory(ctx context.Context, categorySlug string) ([]domain.Article, error)
		GetPublished(context.Context, domain.ArticleID) (*domain.Article, error)
		SearchPublished(ctx context.Context, query string) ([]domain.Article, error)
		Get(context.Context, domain.ArticleID) (*domain.Article, error)
		Create(context.Context, ArticleInput) (*domain.Article, error)
		Update(context.Context, domain.ArticleID, ArticlePatch) (*domain.Article, error)
		Delete(context.Context, domain.ArticleID) error
	}

	// ArticleFilter fields are optional, Query matches title or slug.
	ArticleFilter struct {
		CategorySlug *string
		Published    *bool
		Query        *string
	}

	ArticleInput struct {
		CategorySlug string
		Title        string
		Slug         string
		Content      string
		Summary      string
		ReadingTime  int
		Level        domain.Level
		Tags         []string
		Published    *bool
	}

	ArticlePatch struct {
		CategorySlug *string
		Title        *string
		Slug         *string
		Content      *string
		Summary      *string
		ReadingTime  *int
		Level        *domain.Level
		Tags         *[]string
		Published    *bool
	}

	articleService struct {
		articleRepo  domain.ArticleRepository
		categoryRepo domain.CategoryRepository
		transaction  persistence.Transaction
		clock        pkgtime.Clock
	}
)

func NewArticle(
	articleRepo domain.ArticleRepository,
	categoryRepo domain.CategoryRepository,
	transaction persistence.Transaction,
	clock pkgtime.Clock,
) Article {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		transaction:  transaction,
		clock:        clock,
	}
}

func (s *articleService) List(ctx context.Context, filter ArticleFilter) ([]domain.Article, error) {
	spec := domain.FindArticleSpecification{
		Published:      filter.Published,
		ExcludeContent: true,
	}

	if filter.CategorySlug != nil {
		category, err := s.categoryRepo.FindOne(ctx, domain.FindCategorySpecification{
			Slugs: []string{strings.ToLower(strings.TrimSpace(*filter.CategorySlug))},
		})
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return []domain.Article{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("find category: %w", err)
		}
		spec.CategoryIDs = []domain.CategoryID{category.ID}
	}
	if filter.Query != nil {
		spec.TitleOrSlug = strings.TrimSpace(*filter.Query)
	}

	return s.articleRepo.Find(ctx, spec)
}

func (s *articleService) ListPublishedByCategory(ctx context.Context, categorySlug string) ([]domain.Article, error) {
	category, err := s.categoryRepo.FindOne(ctx, domain.FindCategorySpecification{
		Slugs:      []string{categorySlug},
		ActiveOnly: true,
	})
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return []domain.Article{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}

	return s.articleRepo.Find(ctx, domain.FindArticleSpecification{
		CategoryIDs:    []domain.CategoryID{category.ID},
		Published:      ptr(true),
		ExcludeContent: true,
	})
}

func (s *articleService) GetPublished(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	return s.articleRepo.FindOne(ctx, domain.FindArticleSpecification{
		IDs:       []domain.ArticleID{id},
		Published: ptr(true),
	})
}

func (s *articleService) SearchPublished(ctx context.Context, query string) ([]domain.Article, error) {
	return s.articleRepo.Find(ctx, domain.FindArticleSpecification{
		Published:      ptr(true),
		TitleOrTag:     query,
		ExcludeContent: true,
	})
}

func (s *articleService) Get(ctx context.Context, id domain.ArticleID) (*domain.Article, error) {
	return s.articleRepo.FindOne(ctx, domain.FindArticleSpecification{IDs: []domain.ArticleID{id}})
}

func (s *articleService) Create(ctx context.Context, in ArticleInput) (*domain.Article, error) {
	categorySlug, err := requiredSlug("categorySlug", in.CategorySlug, categorySlugMaxLen)
	if err != nil {
		return nil, err
	}
	title, err := requiredText("title", in.Title, articleTitleMaxLen)
	if err != nil {
		return nil, err
	}
	slug, err := requiredSlug("slug", in.Slug, articleSlugMaxLen)
	if err != nil {
		return nil, err
	}
	if in.Content == "" {
		return nil, FieldError{Field: "content"}
	}
	summary, err := requiredText("summary", in.Summary, articleSummaryMaxLen)
	if err != nil {
		return nil, err
	}
	readingTime, err := positive("readingTime", in.ReadingTime)
	if err != nil {
		return nil, err
	}
	if !in.Level.Valid() {
		return nil, FieldError{Field: "level"}
	}

	categoryID, err := s.resolveCategory(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now(ctx)
	article := &domain.Article{
		ID:          s.articleRepo.NextID(),
		CategoryID:  categoryID,
		Title:       title,
		Slug:        slug,
		Content:     in.Content,
		Summary:     summary,
		ReadingTime: readingTime,
		Level:       in.Level,
		Language:    domain.LanguageEnglish,
		Tags:        NormalizeTags(in.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Published != nil {
		article.Published = *in.Published
	}

	err = s.articleRepo.Store(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("store article: %w", err)
	}

	return article, nil
}

func (s *articleService) Update(ctx context.Context, id domain.ArticleID, patch ArticlePatch) (*domain.Article, error) {
	var categorySlug string
	if patch.CategorySlug != nil {
		slug, err := requiredSlug("categorySlug", *patch.CategorySlug, categorySlugMaxLen)
		if err != nil {
			return nil, err
		}
		categorySlug = slug
	}

	apply, err := s.validatePatch(patch)
	if err != nil {
		return nil, err
	}

	var categoryID *domain.CategoryID
	if patch.CategorySlug != nil {
		resolved, err := s.resolveCategory(ctx, categorySlug)
		if err != nil {
			return nil, err
		}
		categoryID = &resolved
	}

	return persistence.WithinTransaction(ctx, s.transaction, func(ctx context.Context) (*domain.Article, error) {
		article, err := s.articleRepo.FindOne(
			s.transaction.WithLock(ctx),
			domain.FindArticleSpecification{IDs: []domain.ArticleID{id}},
		)
		if err != nil {
			return nil, err
		}

		apply(article)
		if categoryID != nil {
			article.CategoryID = *categoryID
		}
		article.UpdatedAt = s.clock.Now(ctx)

		err = s.articleRepo.Store(ctx, article)
		if err != nil {
			return nil, fmt.Errorf("store article: %w", err)
		}

		return article, nil
	})
}

func (s *articleService) Delete(ctx context.Context, id domain.ArticleID) error {
	return s.articleRepo.Delete(ctx, id)
}

func (s *articleService) resolveCategory(ctx context.Context, slug string) (domain.CategoryID, error) {
	category, err := s.categoryRepo.FindOne(ctx, domain.FindCategorySpecification{Slugs: []string{slug}})
	if errors.Is(err, domain.ErrCategoryNotFound) {
		return domain.CategoryID{}, CategoryNotFoundError{Slug: slug}
	}
	if err != nil {
		return domain.CategoryID{}, fmt.Errorf("find category: %w", err)
	}

	return category.ID, nil
}

func (s *articleService) validatePatch(patch ArticlePatch) (func(*domain.Article), error) {
	var (
		title, slug, summary string
		readingTime          int
		err                  error
	)
	if patch.Title != nil {
		if title, err = requiredText("title", *patch.Title, articleTitleMaxLen); err != nil {
			return nil, err
		}
	}
	if patch.Slug != nil {
		if slug, err = requiredSlug("slug", *patch.Slug, articleSlugMaxLen); err != nil {
			return nil, err
		}
	}
	if patch.Content != nil && *patch.Content == "" {
		return nil, FieldError{Field: "content"}
	}
	if patch.Summary != nil {
		if summary, err = requiredText("summary", *patch.Summary, articleSummaryMaxLen); err != nil {
			return nil, err
		}
	}
	if patch.ReadingTime != nil {
		if readingTime, err = positive("readingTime", *patch.ReadingTime); err != nil {
			return nil, err
		}
	}
	if patch.Level != nil && !patch.Level.Valid() {
		return nil, FieldError{Field: "level"}
	}

	return func(article *domain.Article) {
		if patch.Title != nil {
			article.Title = title
		}
		if patch.Slug != nil {
			article.Slug = slug
		}
		if patch.Content != nil {
			article.Content = *patch.Content
		}
		if patch.Summary != nil {
			article.Summary = summary
		}
		if patch.ReadingTime != nil {
			article.ReadingTime = readingTime
		}
		if patch.Level != nil {
			article.Level = *patch.Level
		}
		if patch.Tags != nil {
			article.Tags = NormalizeTags(*patch.Tags)
		}
		if patch.Published != nil {
			article.Published = *patch.Published
		}
	}, nil
}

func ptr[T any](v T) *T {
	return &v
}
