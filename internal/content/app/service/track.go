//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Track=Track"
package service

import (
	"context"
	"fmt"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	"github.com/klwxsrx/content-admin-service/pkg/persistence"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

type (
	Track interface {
		List(context.Context, TrackFilter) ([]domain.Track, error)
		ListAI(ctx context.Context, mood *domain.Mood, genre *domain.Genre) ([]domain.Track, error)
		Get(context.Context, domain.TrackID) (*domain.Track, error)
		Create(context.Context, TrackInput) (*domain.Track, error)
		Update(context.Context, domain.TrackID, TrackPatch) (*domain.Track, error)
		Delete(context.Context, domain.TrackID) error
	}

	TrackFilter struct {
		Mood   *domain.Mood
		Genre  *domain.Genre
		IsFree *bool
	}

	TrackInput struct {
		Title    string
		Mood     domain.Mood
		Genre    domain.Genre
		Duration int
		AudioURL string
		IsFree   *bool
	}

	TrackPatch struct {
		Title         *string
		Mood          *domain.Mood
		Genre         *domain.Genre
		Duration      *int
		AudioURL      *string
		IsFree        *bool
		IsAIGenerated *bool
	}

	trackService struct {
		trackRepo   domain.TrackRepository
		transaction persistence.Transaction
		clock       pkgtime.Clock
	}
)

func NewTrack(
	trackRepo domain.TrackRepository,
	transaction persistence.Transaction,
	clock pkgtime.Clock,
) Track {
	return &trackService{
		trackRepo:   trackRepo,
		transaction: transaction,
		clock:       clock,
	}
}

func (s *trackService) List(ctx context.Context, filter TrackFilter) ([]domain.Track, error) {
	return s.trackRepo.Find(ctx, domain.FindTrackSpecification{
		Mood:   filter.Mood,
		Genre:  filter.Genre,
		IsFree: filter.IsFree,
	})
}

func (s *trackService) ListAI(ctx context.Context, mood *domain.Mood, genre *domain.Genre) ([]domain.Track, error) {
	return s.trackRepo.Find(ctx, domain.FindTrackSpecification{
		Mood:            mood,
		Genre:           genre,
		AIGeneratedOnly: true,
	})
}

func (s *trackService) Get(ctx context.Context, id domain.TrackID) (*domain.Track, error) {
	return s.trackRepo.FindOne(ctx, domain.FindTrackSpecification{IDs: []domain.TrackID{id}})
}

func (s *trackService) Create(ctx context.Context, in TrackInput) (*domain.Track, error) {
	title, err := requiredText("title", in.Title, trackTitleMaxLen)
	if err != nil {
		return nil, err
	}
	if !in.Mood.Valid() {
		return nil, FieldError{Field: "mood"}
	}
	if !in.Genre.Valid() {
		return nil, FieldError{Field: "genre"}
	}
	duration, err := positive("duration", in.Duration)
	if err != nil {
		return nil, err
	}
	audioURL, err := requiredText("audioUrl", in.AudioURL, trackAudioURLMaxLen)
	if err != nil {
		return nil, err
	}

	track := &domain.Track{
		ID:            s.trackRepo.NextID(),
		Title:         title,
		Mood:          in.Mood,
		Genre:         in.Genre,
		Duration:      duration,
		AudioURL:      audioURL,
		IsAIGenerated: true,
		IsFree:        true,
		CreatedAt:     s.clock.Now(ctx),
	}
	if in.IsFree != nil {
		track.IsFree = *in.IsFree
	}

	err = s.trackRepo.Store(ctx, track)
	if err != nil {
		return nil, fmt.Errorf("store track: %w", err)
	}

	return track, nil
}

func (s *trackService) Update(ctx context.Context, id domain.TrackID, patch TrackPatch) (*domain.Track, error) {
	apply, err := s.validatePatch(patch)
	if err != nil {
		return nil, err
	}

	return persistence.WithinTransaction(ctx, s.transaction, func(ctx context.Context) (*domain.Track, error) {
		track, err := s.trackRepo.FindOne(
			s.transaction.WithLock(ctx),
			domain.FindTrackSpecification{IDs: []domain.TrackID{id}},
		)
		if err != nil {
			return nil, err
		}

		apply(track)

		err = s.trackRepo.Store(ctx, track)
		if err != nil {
			return nil, fmt.Errorf("store track: %w", err)
		}

		return track, nil
	})
}

func (s *trackService) Delete(ctx context.Context, id domain.TrackID) error {
	return s.trackRepo.Delete(ctx, id)
}

func (s *trackService) validatePatch(patch TrackPatch) (func(*domain.Track), error) {
	var (
		title, audioURL string
		duration        int
		err             error
	)
	if patch.Title != nil {
		if title, err = requiredText("title", *patch.Title, trackTitleMaxLen); err != nil {
			return nil, err
		}
	}
	if patch.Mood != nil && !patch.Mood.Valid() {
		return nil, FieldError{Field: "mood"}
	}
	if patch.Genre != nil && !patch.Genre.Valid() {
		return nil, FieldError{Field: "genre"}
	}
	if patch.Duration != nil {
		if duration, err = positive("duration", *patch.Duration); err != nil {
			return nil, err
		}
	}
	if patch.AudioURL != nil {
		if audioURL, err = requiredText("audioUrl", *patch.AudioURL, trackAudioURLMaxLen); err != nil {
			return nil, err
		}
	}
	if patch.IsAIGenerated != nil && !*patch.IsAIGenerated {
		return nil, ErrAIGeneratedImmutable
	}

	return func(track *domain.Track) {
		if patch.Title != nil {
			track.Title = title
		}
		if patch.Mood != nil {
			track.Mood = *patch.Mood
		}
		if patch.Genre != nil {
			track.Genre = *patch.Genre
		}
		if patch.Duration != nil {
			track.Duration = duration
		}
		if patch.AudioURL != nil {
			track.AudioURL = audioURL
		}
		if patch.IsFree != nil {
			track.IsFree = *patch.IsFree
		}
	}, nil
}
