//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "TrackRepository=TrackRepository"
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	MoodRelax Mood = "relax"
	MoodFocus Mood = "focus"
	MoodSleep Mood = "sleep"

	GenreAmbient   Genre = "ambient"
	GenreLofi      Genre = "lofi"
	GenrePiano     Genre = "piano"
	GenreCinematic Genre = "cinematic"
)

var (
	Moods  = []Mood{MoodRelax, MoodFocus, MoodSleep}
	Genres = []Genre{GenreAmbient, GenreLofi, GenrePiano, GenreCinematic}
)

type (
	// Track is an AI-generated royalty-free instrumental, IsAIGenerated never turns false.
	Track struct {
		ID            TrackID
		Title         string
		Mood          Mood
		Genre         Genre
		Duration      int
		AudioURL      string
		IsAIGenerated bool
		IsFree        bool
		CreatedAt     time.Time
	}

	// TrackRepository lists tracks newest first.
	TrackRepository interface {
		NextID() TrackID
		Store(context.Context, *Track) error
		Delete(context.Context, TrackID) error
		Find(context.Context, FindTrackSpecification) ([]Track, error)
		FindOne(context.Context, FindTrackSpecification) (*Track, error)
	}

	FindTrackSpecification struct {
		IDs             []TrackID
		Mood            *Mood
		Genre           *Genre
		IsFree          *bool
		AIGeneratedOnly bool
	}

	TrackID struct{ uuid.UUID }

	Mood  string
	Genre string
)

func (m Mood) Valid() bool {
	for _, mood := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

func (g Genre) Valid() bool {
	for _, genre := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}
