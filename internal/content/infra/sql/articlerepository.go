package sql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	pkgsql "github.com/klwxsrx/content-admin-service/pkg/sql"
)

const articleTable = "learning_article"

var (
	articleSummaryColumns = []string{
		"id", "category_id", "title", "slug", "summary", "reading_time",
		"level", "language", "tags", "published", "created_at", "updated_at",
	}
	articleColumns = append(append([]string{}, articleSummaryColumns...), "content")
)

type articleRepository struct {
	db pkgsql.Client
}

func NewArticleRepository(db pkgsql.Client) domain.ArticleRepository {
	return articleRepository{db: db}
}

func (r articleRepository) NextID() domain.ArticleID {
	return domain.ArticleID{UUID: uuid.New()}
}

func (r articleRepository) Store(ctx context.Context, article *domain.Article) error {
	tags := article.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := sq.
		Insert(articleTable).
		Columns(articleColumns...).
		Values(
			article.ID,
			article.CategoryID,
			article.Title,
			article.Slug,
			article.Summary,
			article.ReadingTime,
			string(article.Level),
			article.Language,
			pq.Array(tags),
			article.Published,
			article.CreatedAt,
			article.UpdatedAt,
			article.Content,
		).
		Suffix(`on conflict (id) do update set
			category_id = excluded.category_id,
			title = excluded.title,
			slug = excluded.slug,
			summary = excluded.summary,
			reading_time = excluded.reading_time,
			level = excluded.level,
			language = excluded.language,
			tags = excluded.tags,
			published = excluded.published,
			updated_at = excluded.updated_at,
			content = excluded.content
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapSlugViolation(err, article.Slug)
	}

	return nil
}

func (r articleRepository) Delete(ctx context.Context, id domain.ArticleID) error {
	query, args, err := sq.
		Delete(articleTable).
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
		return domain.ErrArticleNotFound
	}

	return nil
}

func (r articleRepository) Find(ctx context.Context, spec domain.FindArticleSpecification) ([]domain.Article, error) {
	query, args, err := r.buildFindQuery(ctx, spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxArticle
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	return result, nil
}

func (r articleRepository) FindOne(ctx context.Context, spec domain.FindArticleSpecification) (*domain.Article, error) {
	query, args, err := r.buildFindQuery(ctx, spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxArticle
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, pkgsql.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, err
	}

	article := row.toDomain()
	return &article, nil
}

func (r articleRepository) buildFindQuery(ctx context.Context, spec domain.FindArticleSpecification) sq.SelectBuilder {
	columns := articleColumns
	if spec.ExcludeContent {
		columns = articleSummaryColumns
	}

	qb := sq.
		Select(columns...).
		From(articleTable).
		OrderBy("created_at desc")
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if len(spec.CategoryIDs) > 0 {
		qb = qb.Where(sq.Eq{"category_id": spec.CategoryIDs})
	}
	if spec.Published != nil {
		qb = qb.Where(sq.Eq{"published": *spec.Published})
	}
	if spec.TitleOrSlug != "" {
		pattern := containsPattern(spec.TitleOrSlug)
		qb = qb.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"slug": pattern},
		})
	}
	if spec.TitleOrTag != "" {
		qb = qb.Where(sq.Or{
			sq.ILike{"title": containsPattern(spec.TitleOrTag)},
			sq.Expr("? = any(tags)", strings.ToLower(spec.TitleOrTag)),
		})
	}
	if pkgsql.IsLockRequested(ctx) {
		qb = qb.Suffix("for update")
	}

	return qb
}

type sqlxArticle struct {
	ID          domain.ArticleID  `db:"id"`
	CategoryID  domain.CategoryID `db:"category_id"`
	Title       string            `db:"title"`
	Slug        string            `db:"slug"`
	Content     string            `db:"content"`
	Summary     string            `db:"summary"`
	ReadingTime int               `db:"reading_time"`
	Level       string            `db:"level"`
	Language    string            `db:"language"`
	Tags        pq.StringArray    `db:"tags"`
	Published   bool              `db:"published"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}

func (a sqlxArticle) toDomain() domain.Article {
	tags := []string(a.Tags)
	if tags == nil {
		tags = []string{}
	}

	return domain.Article{
		ID:          a.ID,
		CategoryID:  a.CategoryID,
		Title:       a.Title,
		Slug:        a.Slug,
		Content:     a.Content,
		Summary:     a.Summary,
		ReadingTime: a.ReadingTime,
		Level:       domain.Level(a.Level),
		Language:    a.Language,
		Tags:        tags,
		Published:   a.Published,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
