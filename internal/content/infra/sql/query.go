package sql

import (
	"strings"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	pkgsql "github.com/klwxsrx/content-admin-service/pkg/sql"
)

const slugConstraintSuffix = "_slug_key"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching value literally anywhere in the column.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func mapSlugViolation(err error, slug string) error {
	constraint, ok := pkgsql.IsUniqueViolation(err)
	if !ok || !strings.HasSuffix(constraint, slugConstraintSuffix) {
		return err
	}

	return domain.DuplicateKeyError{Key: "slug", Value: slug}
}
