package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	pkgsql "github.com/klwxsrx/content-admin-service/pkg/sql"
)

const categoryTable = "learning_category"

type categoryRepository struct {
	db pkgsql.Client
}

func NewCategoryRepository(db pkgsql.Client) domain.CategoryRepository {
	return categoryRepository{db: db}
}

func (r categoryRepository) NextID() domain.CategoryID {
	return domain.CategoryID{UUID: uuid.New()}
}

func (r categoryRepository) Store(ctx context.Context, category *domain.Category) error {
	query, args, err := sq.
		Insert(categoryTable).
		Columns("id", "title", "slug", "description", "image_url", "sort_order", "is_active", "created_at", "updated_at").
		Values(
			category.ID,
			category.Title,
			category.Slug,
			category.Description,
			category.ImageURL,
			category.Order,
			category.IsActive,
			category.CreatedAt,
			category.UpdatedAt,
		).
		Suffix(`on conflict (id) do update set
			title = excluded.title,
			slug = excluded.slug,
			description = excluded.description,
			image_url = excluded.image_url,
			sort_order = excluded.sort_order,
			is_active = excluded.is_active,
			updated_at = excluded.updated_at
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapSlugViolation(err, category.Slug)
	}

	return nil
}

func (r categoryRepository) Delete(ctx context.Context, id domain.CategoryID) error {
	query, args, err := sq.
		Delete(categoryTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

func (r categoryRepository) Find(ctx context.Context, spec domain.FindCategorySpecification) ([]domain.Category, error) {
	query, args, err := r.buildFindQuery(ctx, spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxCategory
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	return result, nil
}

func (r categoryRepository) FindOne(ctx context.Context, spec domain.FindCategorySpecification) (*domain.Category, error) {
	query, args, err := r.buildFindQuery(ctx, spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxCategory
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, pkgsql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	category := row.toDomain()
	return &category, nil
}

func (r categoryRepository) buildFindQuery(ctx context.Context, spec domain.FindCategorySpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "title", "slug", "description", "image_url", "sort_order", "is_active", "created_at", "updated_at").
		From(categoryTable).
		OrderBy("sort_order asc", "created_at asc")
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if len(spec.Slugs) > 0 {
		qb = qb.Where(sq.Eq{"slug": spec.Slugs})
	}
	if spec.ActiveOnly {
		qb = qb.Where(sq.Eq{"is_active": true})
	}
	if pkgsql.IsLockRequested(ctx) {
		qb = qb.Suffix("for update")
	}

	return qb
}

type sqlxCategory struct {
	ID          domain.CategoryID `db:"id"`
	Title       string            `db:"title"`
	Slug        string            `db:"slug"`
	Description string            `db:"description"`
	ImageURL    *string           `db:"image_url"`
	Order       int               `db:"sort_order"`
	IsActive    bool              `db:"is_active"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}

func (c sqlxCategory) toDomain() domain.Category {
	return domain.Category{
		ID:          c.ID,
		Title:       c.Title,
		Slug:        c.Slug,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Order:       c.Order,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
