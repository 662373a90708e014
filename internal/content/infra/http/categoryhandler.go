package http

import (
	"net/http"

	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

const (
	adminCategoriesPath = "/api/admin/categories"
	adminCategoryPath   = adminCategoriesPath + "/{" + idParam + "}"
)

type (
	ListCategoriesHandler struct{ categories service.Category }
	CreateCategoryHandler struct{ categories service.Category }
	GetCategoryHandler    struct{ categories service.Category }
	UpdateCategoryHandler struct{ categories service.Category }
	DeleteCategoryHandler struct{ categories service.Category }
)

type (
	categoryIn struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
		Order       *int   `json:"order"`
		IsActive    *bool  `json:"isActive"`
	}

	categoryPatchIn struct {
		Title       *string `json:"title"`
		Slug        *string `json:"slug"`
		Description *string `json:"description"`
		ImageURL    *string `json:"imageUrl"`
		Order       *int    `json:"order"`
		IsActive    *bool   `json:"isActive"`
	}
)

func NewListCategoriesHandler(categories service.Category) ListCategoriesHandler {
	return ListCategoriesHandler{categories: categories}
}

func (h ListCategoriesHandler) Method() string { return http.MethodGet }

func (h ListCategoriesHandler) Path() string { return adminCategoriesPath }

func (h ListCategoriesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(commonhttp.Data(toCategoriesOut(categories)))
	return nil
}

func NewCreateCategoryHandler(categories service.Category) CreateCategoryHandler {
	return CreateCategoryHandler{categories: categories}
}

func (h CreateCategoryHandler) Method() string { return http.MethodPost }

func (h CreateCategoryHandler) Path() string { return adminCategoriesPath }

func (h CreateCategoryHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := jsonBody[categoryIn](r)
	if err != nil {
		return err
	}

	category, err := h.categories.Create(r.Context(), service.CategoryInput{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Order:       in.Order,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return responseError(err)
	}

	w.SetStatusCode(http.StatusCreated)
	w.SetJSONBody(commonhttp.Data(itemOut[categoryOut]{Item: toCategoryOut(*category)}))
	return nil
}

func NewGetCategoryHandler(categories service.Category) GetCategoryHandler {
	return GetCategoryHandler{categories: categories}
}

func (h GetCategoryHandler) Method() string { return http.MethodGet }

func (h GetCategoryHandler) Path() string { return adminCategoryPath }

func (h GetCategoryHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidID)
	if err != nil {
		return err
	}

	category, err := h.categories.Get(r.Context(), domain.CategoryID{UUID: id})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(itemOut[categoryOut]{Item: toCategoryOut(*category)}))
	return nil
}

func NewUpdateCategoryHandler(categories service.Category) UpdateCategoryHandler {
	return UpdateCategoryHandler{categories: categories}
}

func (h UpdateCategoryHandler) Method() string { return http.MethodPatch }

func (h UpdateCategoryHandler) Path() string { return adminCategoryPath }

func (h UpdateCategoryHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidID)
	if err != nil {
		return err
	}
	in, err := jsonBody[categoryPatchIn](r)
	if err != nil {
		return err
	}

	category, err := h.categories.Update(r.Context(), domain.CategoryID{UUID: id}, service.CategoryPatch{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Order:       in.Order,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(itemOut[categoryOut]{Item: toCategoryOut(*category)}))
	return nil
}

func NewDeleteCategoryHandler(categories service.Category) DeleteCategoryHandler {
	return DeleteCategoryHandler{categories: categories}
}

func (h DeleteCategoryHandler) Method() string { return http.MethodDelete }

func (h DeleteCategoryHandler) Path() string { return adminCategoryPath }

func (h DeleteCategoryHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidID)
	if err != nil {
		return err
	}

	err = h.categories.Delete(r.Context(), domain.CategoryID{UUID: id})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(deletedOut{Deleted: true}))
	return nil
}
