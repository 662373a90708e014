package http

import (
	"net/http"

	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

const (
	adminTracksPath = "/api/admin/tracks"
	adminTrackPath  = adminTracksPath + "/{" + idParam + "}"
)

type (
	ListTracksHandler  struct{ tracks service.Track }
	CreateTrackHandler struct{ tracks service.Track }
	GetTrackHandler    struct{ tracks service.Track }
	UpdateTrackHandler struct{ tracks service.Track }
	DeleteTrackHandler struct{ tracks service.Track }
)

type (
	trackIn struct {
		Title    string       `json:"title"`
		Mood     domain.Mood  `json:"mood"`
		Genre    domain.Genre `json:"genre"`
		Duration wholeNumber  `json:"duration"`
		AudioURL string       `json:"audioUrl"`
		IsFree   *bool        `json:"isFree"`
	}

	trackPatchIn struct {
		Title         *string       `json:"title"`
		Mood          *domain.Mood  `json:"mood"`
		Genre         *domain.Genre `json:"genre"`
		Duration      *wholeNumber  `json:"duration"`
		AudioURL      *string       `json:"audioUrl"`
		IsFree        *bool         `json:"isFree"`
		IsAIGenerated *bool         `json:"isAiGenerated"`
	}
)

func NewListTracksHandler(tracks service.Track) ListTracksHandler {
	return ListTracksHandler{tracks: tracks}
}

func (h ListTracksHandler) Method() string { return http.MethodGet }

func (h ListTracksHandler) Path() string { return adminTracksPath }

func (h ListTracksHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	mood, err := enumQuery(r, "mood", domain.Moods)
	if err != nil {
		return err
	}
	genre, err := enumQuery(r, "genre", domain.Genres)
	if err != nil {
		return err
	}
	isFree, err := boolQuery(r, "isFree")
	if err != nil {
		return err
	}

	tracks, err := h.tracks.List(r.Context(), service.TrackFilter{
		Mood:   mood,
		Genre:  genre,
		IsFree: isFree,
	})
	if err != nil {
		return err
	}

	w.SetJSONBody(commonhttp.Data(toTracksOut(tracks)))
	return nil
}

func NewCreateTrackHandler(tracks service.Track) CreateTrackHandler {
	return CreateTrackHandler{tracks: tracks}
}

func (h CreateTrackHandler) Method() string { return http.MethodPost }

func (h CreateTrackHandler) Path() string { return adminTracksPath }

func (h CreateTrackHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := jsonBody[trackIn](r)
	if err != nil {
		return err
	}

	track, err := h.tracks.Create(r.Context(), service.TrackInput{
		Title:    in.Title,
		Mood:     in.Mood,
		Genre:    in.Genre,
		Duration: in.Duration.Int(),
		AudioURL: in.AudioURL,
		IsFree:   in.IsFree,
	})
	if err != nil {
		return responseError(err)
	}

	w.SetStatusCode(http.StatusCreated)
	w.SetJSONBody(commonhttp.Data(itemOut[trackOut]{Item: toTrackOut(*track)}))
	return nil
}

func NewGetTrackHandler(tracks service.Track) GetTrackHandler {
	return GetTrackHandler{tracks: tracks}
}

func (h GetTrackHandler) Method() string { return http.MethodGet }

func (h GetTrackHandler) Path() string { return adminTrackPath }

func (h GetTrackHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidID)
	if err != nil {
		return err
	}

	track, err := h.tracks.Get(r.Context(), domain.TrackID{UUID: id})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(itemOut[trackOut]{Item: toTrackOut(*track)}))
	return nil
}

func NewUpdateTrackHandler(tracks service.Track) UpdateTrackHandler {
	return UpdateTrackHandler{tracks: tracks}
}

func (h UpdateTrackHandler) Method() string { return http.MethodPatch }

func (h UpdateTrackHandler) Path() string { return adminTrackPath }

func (h UpdateTrackHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidID)
	if err != nil {
		return err
	}
	in, err := jsonBody[trackPatchIn](r)
	if err != nil {
		return err
	}

	track, err := h.tracks.Update(r.Context(), domain.TrackID{UUID: id}, service.TrackPatch{
		Title:         in.Title,
		Mood:          in.Mood,
		Genre:         in.Genre,
		Duration:      in.Duration.IntPtr(),
		AudioURL:      in.AudioURL,
		IsFree:        in.IsFree,
		IsAIGenerated: in.IsAIGenerated,
	})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(itemOut[trackOut]{Item: toTrackOut(*track)}))
	return nil
}

func NewDeleteTrackHandler(tracks service.Track) DeleteTrackHandler {
	return DeleteTrackHandler{tracks: tracks}
}

func (h DeleteTrackHandler) Method() string { return http.MethodDelete }

func (h DeleteTrackHandler) Path() string { return adminTrackPath }

func (h DeleteTrackHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, errInvalidID)
	if err != nil {
		return err
	}

	err = h.tracks.Delete(r.Context(), domain.TrackID{UUID: id})
	if err != nil {
		return responseError(err)
	}

	w.SetJSONBody(commonhttp.Data(deletedOut{Deleted: true}))
	return nil
}
