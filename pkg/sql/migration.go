package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/content-admin-service/pkg/log"
)

const (
	migrationLockName = "perform_migration_lock"

	migrationTableDDL = `
		create table if not exists migration (
			id          text primary key,
			executed_at timestamptz not null default current_timestamp
		)
	`
)

type (
	Migration struct {
		ID  string
		SQL string
	}

	MigrationSource func() ([]Migration, error)
)

// FSMigrations reads every *.sql file of the root directory, ordered by name.
func FSMigrations(files fs.FS) MigrationSource {
	return func() ([]Migration, error) {
		names, err := fs.Glob(files, "*.sql")
		if err != nil {
			return nil, fmt.Errorf("list migration files: %w", err)
		}
		sort.Strings(names)

		result := make([]Migration, 0, len(names))
		for _, name := range names {
			content, err := fs.ReadFile(files, name)
			if err != nil {
				return nil, fmt.Errorf("read migration %s: %w", name, err)
			}

			result = append(result, Migration{
				ID:  strings.TrimSuffix(name, ".sql"),
				SQL: string(content),
			})
		}

		return result, nil
	}
}

type Migrator struct {
	db     TxClient
	logger log.Logger
}

func NewMigrator(db TxClient, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	migrations := make([]Migration, 0)
	for _, source := range sources {
		sourceMigrations, err := source()
		if err != nil {
			return err
		}
		migrations = append(migrations, sourceMigrations...)
	}
	if len(migrations) == 0 {
		return nil
	}

	_, err := m.db.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	for _, migration := range migrations {
		executed, err := m.execute(ctx, migration)
		if err != nil {
			return fmt.Errorf("migration %s: %w", migration.ID, err)
		}
		if executed {
			m.logger.WithField("migrationID", migration.ID).Info(ctx, "migration executed")
		}
	}

	return nil
}

func (m *Migrator) execute(ctx context.Context, migration Migration) (executed bool, err error) {
	if strings.TrimSpace(migration.SQL) == "" {
		return false, errors.New("empty migration")
	}

	err = NewTransaction(m.db).Execute(ctx, func(ctx context.Context) error {
		tx := NewTransactionalClient(m.db)

		var count int
		err := tx.GetContext(ctx, &count, "select count(*) from migration where id = $1", migration.ID)
		if err != nil {
			return fmt.Errorf("check migration: %w", err)
		}
		if count > 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx, migration.SQL)
		if err != nil {
			return fmt.Errorf("execute sql: %w", err)
		}

		_, err = tx.ExecContext(ctx, "insert into migration (id) values ($1)", migration.ID)
		if err != nil {
			return fmt.Errorf("store migration: %w", err)
		}

		executed = true
		return nil
	}, migrationLockName)

	return executed, err
}
