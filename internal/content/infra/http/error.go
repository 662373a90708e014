package http

import (
	"errors"

	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
)

var errInvalidID = commonhttp.BadRequest("Invalid id", nil)

// responseError turns service errors into client errors, unknown errors are returned as is.
func responseError(err error) error {
	var (
		fieldErr    service.FieldError
		duplicate   domain.DuplicateKeyError
		categoryErr service.CategoryNotFoundError
	)
	switch {
	case errors.As(err, &fieldErr):
		return commonhttp.BadRequest("Invalid body: "+fieldErr.Field, nil)
	case errors.As(err, &duplicate):
		return commonhttp.BadRequest("Duplicate key", map[string]any{
			"keyValue": map[string]any{duplicate.Key: duplicate.Value},
		})
	case errors.As(err, &categoryErr):
		return commonhttp.BadRequest("Category not found", map[string]any{"categorySlug": categoryErr.Slug})
	case errors.Is(err, service.ErrAIGeneratedImmutable):
		return commonhttp.BadRequest(service.ErrAIGeneratedImmutable.Error(), nil)
	case errors.Is(err, domain.ErrCategoryNotFound):
		return commonhttp.NotFound("Category not found")
	case errors.Is(err, domain.ErrArticleNotFound):
		return commonhttp.NotFound("Article not found")
	case errors.Is(err, domain.ErrTrackNotFound):
		return commonhttp.NotFound("Track not found")
	default:
		return err
	}
}
