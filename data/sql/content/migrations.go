package content

import (
	"embed"

	"github.com/klwxsrx/content-admin-service/pkg/sql"
)

var Migrations = sql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
