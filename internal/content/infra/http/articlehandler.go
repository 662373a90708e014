package http

import (
	"net/http"
	"strings"

	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
	pkgstrings "github.com/klwxsrx/content-admin-service/pkg/strings"
)

const (
	adminArticlesPath = "/api/admin/articles"
	adminArticlePath  = adminArticlesPath + "/{" + idParam + "}"
)

type (
	ListArticlesHandler  struct{ articles service.Article }
	CreateArticleHandler struct{ articles service.Article }
	GetArticleHandler    struct{ articles service.Article }
	UpdateArticleHandler struct{ articles service.Article }
	DeleteArticleHandler struct{ articles service.Article }
)

type (
	articleIn struct {
		CategorySlug string       `json:"categorySlug"`
		Title        string       `json:"title"`
		Slug         string       `json:"slug"`
		Content      string       `json:"content"`
		Summary      string       `json:"summary"`
		ReadingTime  wholeNumber  `json:"readingTime"`
		Level        domain.Level `json:"level"`
		Tags         []string     `json:"tags"`
		Published    *bool        `json:"published"`
	}

	// articlePatchIn ignores language, it is always "en".
	articlePatchIn struct {
		CategorySlug *string       `json:"categorySlug"`
		Title        *string       `json:"title"`
		Slug         *string       `json:"slug"`
		Content      *string       `json:"content"`
		Summary      *string       `json:"summary"`
		ReadingTime  *wholeNumber  `json:"readingTime"`
		Level        *domain.Level `json:"level"`
		Tags         *[]string     `json:"tags"`
		Published    *bool         `json:"published"`
	}
)

func NewListArticlesHandler(articles service.Article) ListArticlesHandler {
	return ListArticlesHandler{articles: articles}
}

func (h ListArticlesHandler) Method() string { return http.MethodGet }

func (h ListArticlesHandler) Path() string { return adminArticlesPath }

func (h ListArticlesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	published, err := boolQuery(r, "published")
	if err != nil {
		return err
	}

	filter := service.ArticleFilter{Published: published}
	if category, _ := queryValue(r, "category"); category != "" {
		filter.CategorySlug = &category
	}
	if q, _ := queryValue(r, "q"); q != "" {
		q = strings.TrimSpace(q)
		if pkgstrings.RuneLen(q) > queryMaxLen {
			return invalidQueryParam("q")
		}
		filter.Query = &q
	}

	articles, err := h.articles.List(r.Context(), filter)
	if err != nil {
		return err
	}

	w.SetJSONBody(commonhttp.Data(toArticleSummariesOut(articles)))
	return nil
}

func NewCreateArticleHandler(articles service.Article) CreateArticleHandler {
	return CreateArticleHandler{articles: articles}
}

func (h CreateArticleHandler) Method() string { return http.MethodPost }

func (h CreateArticleHandler) Path() string { return adminArticlesPath }

func (h CreateArticleHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := jsonBody[articleIn](r)
	if err != nil {
		return err
	}

	article, err := h.articles.Create(r.Context(), service.ArticleInput{
		CategorySlug: in.CategorySlug,
		Title:        in.Title,
		Slug:         in.Slug,
		Content:      in.Content,
		Summary:      in.Summary,
		ReadingTime:  in.ReadingTime.Int(),
		Level:        in.Level,
		Tags:         in.Tags,
		Published:    in.Published,
	})
	if err != nil {
		return responseError(err)
	}

	w.SetStatusCode(http.StatusCreated)
	w.SetJSONBody(commonhttp.Data(itemOut[articleOut]{Item: toArticleOut(*article, true)}))
	return nil
}

func NewGetArticleHandler(articles service.Article) GetArticleHandler {
	return GetArticleHandler{articles: articles}
}

func (h GetArticleHandler) Method() string { return http.MethodGet }

func (h GetArticleHandler) Path() string { return adminArticlePath }

func (h GetArticleHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidID)
	if err != nil {
		return err
	}

	article, err := h.articles.Get(r.Context(), domain.ArticleID{UUID: id})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(itemOut[articleOut]{Item: toArticleOut(*article, true)}))
	return nil
}

func NewUpdateArticleHandler(articles service.Article) UpdateArticleHandler {
	return UpdateArticleHandler{articles: articles}
}

func (h UpdateArticleHandler) Method() string { return http.MethodPatch }

func (h UpdateArticleHandler) Path() string { return adminArticlePath }

func (h UpdateArticleHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidID)
	if err != nil {
		return err
	}
	in, err := jsonBody[articlePatchIn](r)
	if err != nil {
		return err
	}

	article, err := h.articles.Update(r.Context(), domain.ArticleID{UUID: id}, service.ArticlePatch{
		CategorySlug: in.CategorySlug,
		Title:        in.Title,
		Slug:         in.Slug,
		Content:      in.Content,
		Summary:      in.Summary,
		ReadingTime:  in.ReadingTime.IntPtr(),
		Level:        in.Level,
		Tags:         in.Tags,
		Published:    in.Published,
	})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(itemOut[articleOut]{Item: toArticleOut(*article, true)}))
	return nil
}

func NewDeleteArticleHandler(articles service.Article) DeleteArticleHandler {
	return DeleteArticleHandler{articles: articles}
}

func (h DeleteArticleHandler) Method() string { return http.MethodDelete }

func (h DeleteArticleHandler) Path() string { return adminArticlePath }

func (h DeleteArticleHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidID)
	if err != nil {
		return err
	}

	err = h.articles.Delete(r.Context(), domain.ArticleID{UUID: id})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(deletedOut{Deleted: true}))
	return nil
}
