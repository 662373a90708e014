package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	pkgsql "github.com/klwxsrx/content-admin-service/pkg/sql"
)

const trackTable = "ai_track"

type trackRepository struct {
	db pkgsql.Client
}

func NewTrackRepository(db pkgsql.Client) domain.TrackRepository {
	return trackRepository{db: db}
}

func (r trackRepository) NextID() domain.TrackID {
	return domain.TrackID{UUID: uuid.New()}
}

func (r trackRepository) Store(ctx context.Context, track *domain.Track) error {
	query, args, err := sq.
		Insert(trackTable).
		Columns("id", "title", "mood", "genre", "duration", "audio_url", "is_ai_generated", "is_free", "created_at").
		Values(
			track.ID,
			track.Title,
			string(track.Mood),
			string(track.Genre),
			track.Duration,
			track.AudioURL,
			track.IsAIGenerated,
			track.IsFree,
			track.CreatedAt,
		).
		Suffix(`on conflict (id) do update set
			title = excluded.title,
			mood = excluded.mood,
			genre = excluded.genre,
			duration = excluded.duration,
			audio_url = excluded.audio_url,
			is_ai_generated = excluded.is_ai_generated,
			is_free = excluded.is_free
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r trackRepository) Delete(ctx context.Context, id domain.TrackID) error {
	query, args, err := sq.
		Delete(trackTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrTrackNotFound
	}

	return nil
}

func (r trackRepository) Find(ctx context.Context, spec domain.FindTrackSpecification) ([]domain.Track, error) {
	query, args, err := r.buildFindQuery(ctx, spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxTrack
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Track, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	return result, nil
}

func (r trackRepository) FindOne(ctx context.Context, spec domain.FindTrackSpecification) (*domain.Track, error) {
	query, args, err := r.buildFindQuery(ctx, spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxTrack
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, pkgsql.ErrNoRows) {
		return nil, domain.ErrTrackNotFound
	}
	if err != nil {
		return nil, err
	}

	track := row.toDomain()
	return &track, nil
}

func (r trackRepository) buildFindQuery(ctx context.Context, spec domain.FindTrackSpecification) sq.SelectBuilder {
	qb := sq.
		Select("id", "title", "mood", "genre", "duration", "audio_url", "is_ai_generated", "is_free", "created_at").
		From(trackTable).
		OrderBy("created_at desc")
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if spec.Mood != nil {
		qb = qb.Where(sq.Eq{"mood": string(*spec.Mood)})
	}
	if spec.Genre != nil {
		qb = qb.Where(sq.Eq{"genre": string(*spec.Genre)})
	}
	if spec.IsFree != nil {
		qb = qb.Where(sq.Eq{"is_free": *spec.IsFree})
	}
	if spec.AIGeneratedOnly {
		qb = qb.Where(sq.Eq{"is_ai_generated": true})
	}
	if pkgsql.IsLockRequested(ctx) {
		qb = qb.Suffix("for update")
	}

	return qb
}

type sqlxTrack struct {
	ID            domain.TrackID `db:"id"`
	Title         string         `db:"title"`
	Mood          string         `db:"mood"`
	Genre         string         `db:"genre"`
	Duration      int            `db:"duration"`
	AudioURL      string         `db:"audio_url"`
	IsAIGenerated bool           `db:"is_ai_generated"`
	IsFree        bool           `db:"is_free"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (t sqlxTrack) toDomain() domain.Track {
	return domain.Track{
		ID:            t.ID,
		Title:         t.Title,
		Mood:          domain.Mood(t.Mood),
		Genre:         domain.Genre(t.Genre),
		Duration:      t.Duration,
		AudioURL:      t.AudioURL,
		IsAIGenerated: t.IsAIGenerated,
		IsFree:        t.IsFree,
		CreatedAt:     t.CreatedAt,
	}
}
