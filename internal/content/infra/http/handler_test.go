package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	servicemock "github.com/klwxsrx/content-admin-service/internal/content/app/service/mock"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	contenthttp "github.com/klwxsrx/content-admin-service/internal/content/infra/http"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

var createdAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type services struct {
	categories *servicemock.Category
	articles   *servicemock.Article
	tracks     *servicemock.Track
	plays      *servicemock.Play
}

func newServer(t *testing.T) (pkghttp.Server, services) {
	t.Helper()

	ctrl := gomock.NewController(t)
	s := services{
		categories: servicemock.NewCategory(ctrl),
		articles:   servicemock.NewArticle(ctrl),
		tracks:     servicemock.NewTrack(ctrl),
		plays:      servicemock.NewPlay(ctrl),
	}

	server := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithErrorEncoder(commonhttp.EncodeError))
	for _, handler := range []pkghttp.Handler{
		contenthttp.NewListCategoriesHandler(s.categories),
		contenthttp.NewCreateCategoryHandler(s.categories),
		contenthttp.NewGetCategoryHandler(s.categories),
		contenthttp.NewUpdateCategoryHandler(s.categories),
		contenthttp.NewDeleteCategoryHandler(s.categories),
		contenthttp.NewListArticlesHandler(s.articles),
		contenthttp.NewCreateArticleHandler(s.articles),
		contenthttp.NewGetArticleHandler(s.articles),
		contenthttp.NewUpdateArticleHandler(s.articles),
		contenthttp.NewDeleteArticleHandler(s.articles),
		contenthttp.NewListTracksHandler(s.tracks),
		contenthttp.NewCreateTrackHandler(s.tracks),
		contenthttp.NewGetTrackHandler(s.tracks),
		contenthttp.NewUpdateTrackHandler(s.tracks),
		contenthttp.NewDeleteTrackHandler(s.tracks),
		contenthttp.NewLearningCategoriesHandler(s.categories),
		contenthttp.NewLearningArticlesHandler(s.articles),
		contenthttp.NewLearningArticleHandler(s.articles),
		contenthttp.NewLearningSearchHandler(s.articles),
		contenthttp.NewAITracksHandler(s.tracks),
		contenthttp.NewRecordPlayHandler(s.plays),
		contenthttp.NewIndexHandler(),
		contenthttp.NewConfigHandler(),
	} {
		server.Register(handler)
	}

	return server, s
}

func do(server http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	r := httptest.NewRequestWithContext(context.Background(), method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, r)

	var out envelope
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestCategoryHandlers(t *testing.T) {
	id := uuid.New()
	category := &domain.Category{
		ID:          domain.CategoryID{UUID: id},
		Title:       "Piano",
		Slug:        "piano",
		Description: "Keys",
		IsActive:    true,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}

	tests := []struct {
		name          string
		method        string
		target        string
		body          string
		prepare       func(s services)
		expectCode    int
		expectMessage string
		expectDetails map[string]any
		expectData    string
	}{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/admin/categories",
			body:   `{"title":"Piano","slug":"piano","description":"Keys","order":2}`,
			prepare: func(s services) {
				s.categories.EXPECT().Create(gomock.Any(), service.CategoryInput{
					Title: "Piano", Slug: "piano", Description: "Keys", Order: func() *int { v := 2; return &v }(),
				}).Return(category, nil)
			},
			expectCode: http.StatusCreated,
			expectData: `{"item":{"id":"` + id.String() + `","title":"Piano","slug":"piano","description":"Keys",` +
				`"order":0,"isActive":true,"createdAt":"2024-05-01T12:00:00Z","updatedAt":"2024-05-01T12:00:00Z"}}`,
		},
		{
			name:   "create_field_error",
			method: http.MethodPost,
			target: "/api/admin/categories",
			body:   `{"title":""}`,
			prepare: func(s services) {
				s.categories.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, service.FieldError{Field: "title"})
			},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid body: title",
		},
		{
			name:   "create_duplicate_slug",
			method: http.MethodPost,
			target: "/api/admin/categories",
			body:   `{"title":"Piano","slug":"piano","description":"Keys"}`,
			prepare: func(s services) {
				s.categories.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, domain.DuplicateKeyError{Key: "slug", Value: "piano"})
			},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Duplicate key",
			expectDetails: map[string]any{"keyValue": map[string]any{"slug": "piano"}},
		},
		{
			name:          "create_malformed_json",
			method:        http.MethodPost,
			target:        "/api/admin/categories",
			body:          `{"title":`,
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid body",
		},
		{
			name:          "get_invalid_id",
			method:        http.MethodGet,
			target:        "/api/admin/categories/not-an-id",
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid id",
		},
		{
			name:   "get_not_found",
			method: http.MethodGet,
			target: "/api/admin/categories/" + id.String(),
			prepare: func(s services) {
				s.categories.EXPECT().Get(gomock.Any(), domain.CategoryID{UUID: id}).Return(nil, domain.ErrCategoryNotFound)
			},
			expectCode:    http.StatusNotFound,
			expectMessage: "Category not found",
		},
		{
			name:   "patch_only_present_fields",
			method: http.MethodPatch,
			target: "/api/admin/categories/" + id.String(),
			body:   `{"imageUrl":""}`,
			prepare: func(s services) {
				empty := ""
				s.categories.EXPECT().Update(gomock.Any(), domain.CategoryID{UUID: id}, service.CategoryPatch{ImageURL: &empty}).
					Return(category, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/admin/categories/" + id.String(),
			prepare: func(s services) {
				s.categories.EXPECT().Delete(gomock.Any(), domain.CategoryID{UUID: id}).Return(nil)
			},
			expectCode: http.StatusOK,
			expectData: `{"deleted":true}`,
		},
		{
			name:   "list_empty",
			method: http.MethodGet,
			target: "/api/admin/categories",
			prepare: func(s services) {
				s.categories.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectCode: http.StatusOK,
			expectData: `{"items":[]}`,
		},
		{
			name:   "unexpected_error",
			method: http.MethodGet,
			target: "/api/admin/categories",
			prepare: func(s services) {
				s.categories.EXPECT().List(gomock.Any()).Return(nil, errors.New("db is down"))
			},
			expectCode:    http.StatusInternalServerError,
			expectMessage: "Internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, s := newServer(t)
			tt.prepare(s)

			w, out := do(server, tt.method, tt.target, tt.body)
			require.Equal(t, tt.expectCode, w.Code)
			assert.Equal(t, tt.expectCode < http.StatusBadRequest, out.Success)
			if tt.expectMessage != "" {
				assert.Equal(t, tt.expectMessage, out.Error.Message)
			}
			if tt.expectDetails != nil {
				assert.Equal(t, tt.expectDetails, out.Error.Details)
			}
			if tt.expectData != "" {
				assert.JSONEq(t, tt.expectData, string(out.Data))
			}
		})
	}
}

func assertPublicArticleSummaries(t *testing.T, data json.RawMessage) {
	t.Helper()

	var out struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Chords", out.Items[0]["title"])
	assert.Equal(t, []any{}, out.Items[0]["tags"])
	for _, hidden := range []string{"categoryId", "published", "content"} {
		assert.NotContains(t, out.Items[0], hidden)
	}
}

func TestArticleHandlers(t *testing.T) {
	article := &domain.Article{
		ID:         domain.ArticleID{UUID: uuid.New()},
		CategoryID: domain.CategoryID{UUID: uuid.New()},
		Title:      "Chords",
		Content:    "# Chords",
		Level:      domain.LevelBeginner,
		Language:   domain.LanguageEnglish,
	}

	tests := []struct {
		name          string
		method        string
		target        string
		body          string
		prepare       func(s services)
		expectCode    int
		expectMessage string
		expectDetails map[string]any
		check         func(t *testing.T, data json.RawMessage)
	}{
		{
			name:          "list_invalid_published",
			method:        http.MethodGet,
			target:        "/api/admin/articles?published=yes",
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid query param: published",
		},
		{
			name:          "list_query_too_long",
			method:        http.MethodGet,
			target:        "/api/admin/articles?q=" + strings.Repeat("q", 81),
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid query param: q",
		},
		{
			name:   "list_filters_without_content",
			method: http.MethodGet,
			target: "/api/admin/articles?category=Piano&published=false&q=+chords+",
			prepare: func(s services) {
				category, query, published := "Piano", "chords", false
				s.articles.EXPECT().List(gomock.Any(), service.ArticleFilter{
					CategorySlug: &category,
					Published:    &published,
					Query:        &query,
				}).Return([]domain.Article{*article}, nil)
			},
			expectCode: http.StatusOK,
			check: func(t *testing.T, data json.RawMessage) {
				assert.NotContains(t, string(data), `"content"`)
				assert.Contains(t, string(data), `"tags":[]`)
				assert.Contains(t, string(data), `"categoryId"`)
				assert.Contains(t, string(data), `"published":false`)
			},
		},
		{
			name:   "create_unknown_category",
			method: http.MethodPost,
			target: "/api/admin/articles",
			body:   `{"categorySlug":"missing","title":"Chords"}`,
			prepare: func(s services) {
				s.articles.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, service.CategoryNotFoundError{Slug: "missing"})
			},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Category not found",
			expectDetails: map[string]any{"categorySlug": "missing"},
		},
		{
			name:   "create_rounds_fractional_reading_time_up",
			method: http.MethodPost,
			target: "/api/admin/articles",
			body:   `{"categorySlug":"piano","title":"Chords","readingTime":2.5}`,
			prepare: func(s services) {
				s.articles.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in service.ArticleInput) (*domain.Article, error) {
						if in.ReadingTime != 3 {
							return nil, service.FieldError{Field: "readingTime"}
						}
						return article, nil
					})
			},
			expectCode: http.StatusCreated,
		},
		{
			name:   "create_reading_time_not_a_number",
			method: http.MethodPost,
			target: "/api/admin/articles",
			body:   `{"categorySlug":"piano","title":"Chords","readingTime":"5"}`,
			prepare: func(s services) {
				s.articles.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in service.ArticleInput) (*domain.Article, error) {
						if in.ReadingTime != 0 {
							return article, nil
						}
						return nil, service.FieldError{Field: "readingTime"}
					})
			},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid body: readingTime",
		},
		{
			name:   "patch_negative_reading_time",
			method: http.MethodPatch,
			target: "/api/admin/articles/" + article.ID.String(),
			body:   `{"readingTime":-1.5}`,
			prepare: func(s services) {
				s.articles.EXPECT().Update(gomock.Any(), article.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.ArticleID, patch service.ArticlePatch) (*domain.Article, error) {
						if patch.ReadingTime == nil || *patch.ReadingTime != 0 {
							return article, nil
						}
						return nil, service.FieldError{Field: "readingTime"}
					})
			},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid body: readingTime",
		},
		{
			name:   "get_with_content",
			method: http.MethodGet,
			target: "/api/admin/articles/" + article.ID.String(),
			prepare: func(s services) {
				s.articles.EXPECT().Get(gomock.Any(), article.ID).Return(article, nil)
			},
			expectCode: http.StatusOK,
			check: func(t *testing.T, data json.RawMessage) {
				assert.Contains(t, string(data), `"content":"# Chords"`)
			},
		},
		{
			name:   "patch_not_found",
			method: http.MethodPatch,
			target: "/api/admin/articles/" + article.ID.String(),
			body:   `{"published":true}`,
			prepare: func(s services) {
				s.articles.EXPECT().Update(gomock.Any(), article.ID, gomock.Any()).Return(nil, domain.ErrArticleNotFound)
			},
			expectCode:    http.StatusNotFound,
			expectMessage: "Article not found",
		},
		{
			name:          "public_list_requires_category",
			method:        http.MethodGet,
			target:        "/api/learning/articles?category=++",
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Missing or invalid query param: category",
		},
		{
			name:   "public_list_unknown_category_is_empty",
			method: http.MethodGet,
			target: "/api/learning/articles?category=jazz",
			prepare: func(s services) {
				s.articles.EXPECT().ListPublishedByCategory(gomock.Any(), "jazz").Return([]domain.Article{}, nil)
			},
			expectCode: http.StatusOK,
			check: func(t *testing.T, data json.RawMessage) {
				assert.JSONEq(t, `{"items":[]}`, string(data))
			},
		},
		{
			name:          "public_article_invalid_id",
			method:        http.MethodGet,
			target:        "/api/learning/article/123",
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid article id",
		},
		{
			name:   "public_article_unpublished",
			method: http.MethodGet,
			target: "/api/learning/article/" + article.ID.String(),
			prepare: func(s services) {
				s.articles.EXPECT().GetPublished(gomock.Any(), article.ID).Return(nil, domain.ErrArticleNotFound)
			},
			expectCode:    http.StatusNotFound,
			expectMessage: "Article not found",
		},
		{
			name:          "public_search_requires_query",
			method:        http.MethodGet,
			target:        "/api/learning/search",
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Missing or invalid query param: q",
		},
		{
			name:   "public_search",
			method: http.MethodGet,
			target: "/api/learning/search?q=+Piano+",
			prepare: func(s services) {
				s.articles.EXPECT().SearchPublished(gomock.Any(), "Piano").Return([]domain.Article{*article}, nil)
			},
			expectCode: http.StatusOK,
			check:      assertPublicArticleSummaries,
		},
		{
			name:   "public_list_hides_category_and_state",
			method: http.MethodGet,
			target: "/api/learning/articles?category=piano",
			prepare: func(s services) {
				s.articles.EXPECT().ListPublishedByCategory(gomock.Any(), "piano").Return([]domain.Article{*article}, nil)
			},
			expectCode: http.StatusOK,
			check:      assertPublicArticleSummaries,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, s := newServer(t)
			tt.prepare(s)

			w, out := do(server, tt.method, tt.target, tt.body)
			require.Equal(t, tt.expectCode, w.Code)
			if tt.expectMessage != "" {
				assert.Equal(t, tt.expectMessage, out.Error.Message)
			}
			if tt.expectDetails != nil {
				assert.Equal(t, tt.expectDetails, out.Error.Details)
			}
			if tt.check != nil {
				tt.check(t, out.Data)
			}
		})
	}
}

func TestTrackAndMusicHandlers(t *testing.T) {
	trackID := uuid.New()
	track := &domain.Track{
		ID:            domain.TrackID{UUID: trackID},
		Title:         "Rain",
		Mood:          domain.MoodRelax,
		Genre:         domain.GenreAmbient,
		IsAIGenerated: true,
		IsFree:        true,
	}

	tests := []struct {
		name          string
		method        string
		target        string
		body          string
		prepare       func(s services)
		expectCode    int
		expectMessage string
		check         func(t *testing.T, data json.RawMessage)
	}{
		{
			name:          "list_invalid_is_free",
			method:        http.MethodGet,
			target:        "/api/admin/tracks?isFree=1",
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid query param: isFree",
		},
		{
			name:   "list_filters",
			method: http.MethodGet,
			target: "/api/admin/tracks?mood=+sleep+&isFree=true",
			prepare: func(s services) {
				mood, isFree := domain.MoodSleep, true
				s.tracks.EXPECT().List(gomock.Any(), service.TrackFilter{Mood: &mood, IsFree: &isFree}).
					Return([]domain.Track{*track}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:   "patch_ai_generated_false",
			method: http.MethodPatch,
			target: "/api/admin/tracks/" + trackID.String(),
			body:   `{"isAiGenerated":false}`,
			prepare: func(s services) {
				s.tracks.EXPECT().Update(gomock.Any(), track.ID, gomock.Any()).Return(nil, service.ErrAIGeneratedImmutable)
			},
			expectCode:    http.StatusBadRequest,
			expectMessage: "isAiGenerated must remain true",
		},
		{
			name:   "create_rounds_fractional_duration_up",
			method: http.MethodPost,
			target: "/api/admin/tracks",
			body:   `{"title":"Calm","duration":180.2}`,
			prepare: func(s services) {
				s.tracks.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in service.TrackInput) (*domain.Track, error) {
						if in.Duration != 181 {
							return nil, service.FieldError{Field: "duration"}
						}
						return track, nil
					})
			},
			expectCode: http.StatusCreated,
		},
		{
			name:   "patch_duration_not_a_number",
			method: http.MethodPatch,
			target: "/api/admin/tracks/" + trackID.String(),
			body:   `{"duration":true}`,
			prepare: func(s services) {
				s.tracks.EXPECT().Update(gomock.Any(), track.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.TrackID, patch service.TrackPatch) (*domain.Track, error) {
						if patch.Duration == nil || *patch.Duration != 0 {
							return track, nil
						}
						return nil, service.FieldError{Field: "duration"}
					})
			},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid body: duration",
		},
		{
			name:   "delete_not_found",
			method: http.MethodDelete,
			target: "/api/admin/tracks/" + trackID.String(),
			prepare: func(s services) {
				s.tracks.EXPECT().Delete(gomock.Any(), track.ID).Return(domain.ErrTrackNotFound)
			},
			expectCode:    http.StatusNotFound,
			expectMessage: "Track not found",
		},
		{
			name:          "ai_invalid_genre",
			method:        http.MethodGet,
			target:        "/api/music/ai?genre=metal",
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid query param: genre",
		},
		{
			name:   "ai_with_disclaimer",
			method: http.MethodGet,
			target: "/api/music/ai?mood=relax&genre=",
			prepare: func(s services) {
				mood := domain.MoodRelax
				s.tracks.EXPECT().ListAI(gomock.Any(), &mood, gomock.Nil()).Return([]domain.Track{*track}, nil)
			},
			expectCode: http.StatusOK,
			check: func(t *testing.T, data json.RawMessage) {
				var out struct {
					Disclaimer string           `json:"disclaimer"`
					Items      []map[string]any `json:"items"`
				}
				require.NoError(t, json.Unmarshal(data, &out))
				assert.Equal(t, contenthttp.AIDisclaimer, out.Disclaimer)
				require.Len(t, out.Items, 1)
				assert.Equal(t, true, out.Items[0]["isAiGenerated"])
			},
		},
		{
			name:          "play_invalid_track_id",
			method:        http.MethodPost,
			target:        "/api/music/play",
			body:          `{"trackId":"abc","deviceId":"device-1"}`,
			prepare:       func(services) {},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid body: trackId",
		},
		{
			name:   "play_invalid_device_id",
			method: http.MethodPost,
			target: "/api/music/play",
			body:   `{"trackId":"` + trackID.String() + `","deviceId":"ab"}`,
			prepare: func(s services) {
				s.plays.EXPECT().Record(gomock.Any(), track.ID, "ab").Return(service.FieldError{Field: "deviceId"})
			},
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid body: deviceId",
		},
		{
			name:   "play_recorded",
			method: http.MethodPost,
			target: "/api/music/play",
			body:   `{"trackId":" ` + trackID.String() + ` ","deviceId":"device-1"}`,
			prepare: func(s services) {
				s.plays.EXPECT().Record(gomock.Any(), track.ID, "device-1").Return(nil)
			},
			expectCode: http.StatusCreated,
			check: func(t *testing.T, data json.RawMessage) {
				assert.JSONEq(t, `{"recorded":true}`, string(data))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, s := newServer(t)
			tt.prepare(s)

			w, out := do(server, tt.method, tt.target, tt.body)
			require.Equal(t, tt.expectCode, w.Code)
			if tt.expectMessage != "" {
				assert.Equal(t, tt.expectMessage, out.Error.Message)
			}
			if tt.check != nil {
				tt.check(t, out.Data)
			}
		})
	}
}

func TestIndexAndConfigHandlers(t *testing.T) {
	t.Parallel()

	server, _ := newServer(t)

	w, out := do(server, http.MethodGet, "/api/config", "")
	require.Equal(t, http.StatusOK, w.Code)
	var config map[string]string
	require.NoError(t, json.Unmarshal(out.Data, &config))
	assert.Equal(t, contenthttp.AIDisclaimer, config["aiDisclaimer"])
	assert.NotEmpty(t, config["copyrightNotice"])

	w, out = do(server, http.MethodGet, "/api", "")
	require.Equal(t, http.StatusOK, w.Code)
	var index struct {
		Name      string                      `json:"name"`
		PublicAPI map[string][]map[string]any `json:"publicApi"`
		AdminAPI  map[string][]map[string]any `json:"adminApi"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &index))
	assert.NotEmpty(t, index.Name)
	assert.Equal(t, "/healthz", index.PublicAPI["health"][0]["path"])
	assert.Len(t, index.AdminAPI["tracks"], 5)
}
