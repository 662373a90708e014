package sql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	pkgsql "github.com/klwxsrx/content-admin-service/pkg/sql"
)

type playEventRepository struct {
	db pkgsql.Client
}

func NewPlayEventRepository(db pkgsql.Client) domain.PlayEventRepository {
	return playEventRepository{db: db}
}

func (r playEventRepository) NextID() domain.PlayEventID {
	return domain.PlayEventID{UUID: uuid.New()}
}

func (r playEventRepository) Store(ctx context.Context, event *domain.PlayEvent) error {
	query, args, err := sq.
		Insert("play_event").
		Columns("id", "track_id", "device_id", "created_at").
		Values(event.ID, event.TrackID, event.DeviceID, event.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
