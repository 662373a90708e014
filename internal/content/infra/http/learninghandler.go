package http

import (
	"net/http"

	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

var errInvalidArticleID = commonhttp.BadRequest("Invalid article id", nil)

type (
	LearningCategoriesHandler struct{ categories service.Category }
	LearningArticlesHandler   struct{ articles service.Article }
	LearningArticleHandler    struct{ articles service.Article }
	LearningSearchHandler     struct{ articles service.Article }
)

func NewLearningCategoriesHandler(categories service.Category) LearningCategoriesHandler {
	return LearningCategoriesHandler{categories: categories}
}

func (h LearningCategoriesHandler) Method() string { return http.MethodGet }

func (h LearningCategoriesHandler) Path() string { return "/api/learning/categories" }

func (h LearningCategoriesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	categories, err := h.categories.ListActive(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(commonhttp.Data(toCategoriesOut(categories)))
	return nil
}

func NewLearningArticlesHandler(articles service.Article) LearningArticlesHandler {
	return LearningArticlesHandler{articles: articles}
}

func (h LearningArticlesHandler) Method() string { return http.MethodGet }

func (h LearningArticlesHandler) Path() string { return "/api/learning/articles" }

func (h LearningArticlesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	categorySlug, err := requiredQuery(r, "category", categorySlugLen)
	if err != nil {
		return err
	}

	articles, err := h.articles.ListPublishedByCategory(r.Context(), categorySlug)
	if err != nil {
		return err
	}

	w.SetJSONBody(commonhttp.Data(toPublicArticleSummariesOut(articles)))
	return nil
}

func NewLearningArticleHandler(articles service.Article) LearningArticleHandler {
	return LearningArticleHandler{articles: articles}
}

func (h LearningArticleHandler) Method() string { return http.MethodGet }

func (h LearningArticleHandler) Path() string { return "/api/learning/article/{" + idParam + "}" }

func (h LearningArticleHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidArticleID)
	if err != nil {
		return err
	}

	article, err := h.articles.GetPublished(r.Context(), domain.ArticleID{UUID: id})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(itemOut[articleOut]{Item: toArticleOut(*article, true)}))
	return nil
}

func NewLearningSearchHandler(articles service.Article) LearningSearchHandler {
	return LearningSearchHandler{articles: articles}
}

func (h LearningSearchHandler) Method() string { return http.MethodGet }

func (h LearningSearchHandler) Path() string { return "/api/learning/search" }

func (h LearningSearchHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	q, err := requiredQuery(r, "q", queryMaxLen)
	if err != nil {
		return err
	}

	articles, err := h.articles.SearchPublished(r.Context(), q)
	if err != nil {
		return err
	}

	w.SetJSONBody(commonhttp.Data(toPublicArticleSummariesOut(articles)))
	return nil
}
