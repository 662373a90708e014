package content

import (
	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	"github.com/klwxsrx/content-admin-service/internal/content/infra"
	"github.com/klwxsrx/content-admin-service/internal/content/infra/http"
	"github.com/klwxsrx/content-admin-service/internal/pkg/cmd"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
	"github.com/klwxsrx/content-admin-service/pkg/lazy"
	"github.com/klwxsrx/content-admin-service/pkg/persistence"
	"github.com/klwxsrx/content-admin-service/pkg/sql"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

type DependencyContainer struct {
	CategoryService lazy.Loader[service.Category]
	ArticleService  lazy.Loader[service.Article]
	TrackService    lazy.Loader[service.Track]
	PlayService     lazy.Loader[service.Play]

	handlers lazy.Loader[[]pkghttp.Handler]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	clock lazy.Loader[pkgtime.Clock],
) DependencyContainer {
	transaction := transactionProvider(db)
	sqlContainer := infra.NewSQLContainer(db, dbMigrations)

	categoryService := lazy.New(func() (service.Category, error) {
		return service.NewCategory(
			sqlContainer.MustLoad().CategoryRepo.MustLoad(),
			transaction.MustLoad(),
			clock.MustLoad(),
		), nil
	})
	articleService := lazy.New(func() (service.Article, error) {
		return service.NewArticle(
			sqlContainer.MustLoad().ArticleRepo.MustLoad(),
			sqlContainer.MustLoad().CategoryRepo.MustLoad(),
			transaction.MustLoad(),
			clock.MustLoad(),
		), nil
	})
	trackService := lazy.New(func() (service.Track, error) {
		return service.NewTrack(
			sqlContainer.MustLoad().TrackRepo.MustLoad(),
			transaction.MustLoad(),
			clock.MustLoad(),
		), nil
	})
	playService := lazy.New(func() (service.Play, error) {
		return service.NewPlay(sqlContainer.MustLoad().PlayEventRepo.MustLoad(), clock.MustLoad()), nil
	})

	return DependencyContainer{
		CategoryService: categoryService,
		ArticleService:  articleService,
		TrackService:    trackService,
		PlayService:     playService,
		handlers: lazy.New(func() ([]pkghttp.Handler, error) {
			categories := categoryService.MustLoad()
			articles := articleService.MustLoad()
			tracks := trackService.MustLoad()
			return []pkghttp.Handler{
				http.NewIndexHandler(),
				http.NewConfigHandler(),
				http.NewLearningCategoriesHandler(categories),
				http.NewLearningArticlesHandler(articles),
				http.NewLearningArticleHandler(articles),
				http.NewLearningSearchHandler(articles),
				http.NewAITracksHandler(tracks),
				http.NewRecordPlayHandler(playService.MustLoad()),
				http.NewListCategoriesHandler(categories),
				http.NewCreateCategoryHandler(categories),
				http.NewGetCategoryHandler(categories),
				http.NewUpdateCategoryHandler(categories),
				http.NewDeleteCategoryHandler(categories),
				http.NewListArticlesHandler(articles),
				http.NewCreateArticleHandler(articles),
				http.NewGetArticleHandler(articles),
				http.NewUpdateArticleHandler(articles),
				http.NewDeleteArticleHandler(articles),
				http.NewListTracksHandler(tracks),
				http.NewCreateTrackHandler(tracks),
				http.NewGetTrackHandler(tracks),
				http.NewUpdateTrackHandler(tracks),
				http.NewDeleteTrackHandler(tracks),
			}, nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	for _, handler := range c.handlers.MustLoad() {
		registry.Register(handler)
	}
}

func transactionProvider(db lazy.Loader[sql.Database]) lazy.Loader[persistence.Transaction] {
	return lazy.New(func() (persistence.Transaction, error) {
		return sql.NewTransaction(db.MustLoad()), nil
	})
}
