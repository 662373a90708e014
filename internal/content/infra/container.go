package infra

import (
	"github.com/klwxsrx/content-admin-service/data/sql/content"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	"github.com/klwxsrx/content-admin-service/internal/content/infra/sql"
	"github.com/klwxsrx/content-admin-service/internal/pkg/cmd"
	"github.com/klwxsrx/content-admin-service/pkg/lazy"
	pkgsql "github.com/klwxsrx/content-admin-service/pkg/sql"
)

type SQLContainer struct {
	CategoryRepo  lazy.Loader[domain.CategoryRepository]
	ArticleRepo   lazy.Loader[domain.ArticleRepository]
	TrackRepo     lazy.Loader[domain.TrackRepository]
	PlayEventRepo lazy.Loader[domain.PlayEventRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().MustRegister(content.Migrations)

		client := clientProvider(db)
		return SQLContainer{
			CategoryRepo: lazy.New(func() (domain.CategoryRepository, error) {
				return sql.NewCategoryRepository(client.MustLoad()), nil
			}),
			ArticleRepo: lazy.New(func() (domain.ArticleRepository, error) {
				return sql.NewArticleRepository(client.MustLoad()), nil
			}),
			TrackRepo: lazy.New(func() (domain.TrackRepository, error) {
				return sql.NewTrackRepository(client.MustLoad()), nil
			}),
			PlayEventRepo: lazy.New(func() (domain.PlayEventRepository, error) {
				return sql.NewPlayEventRepository(client.MustLoad()), nil
			}),
		}, nil
	})
}

func clientProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[pkgsql.Client] {
	return lazy.New(func() (pkgsql.Client, error) {
		return pkgsql.NewTransactionalClient(db.MustLoad()), nil
	})
}
