package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

const AIDisclaimer = "All tracks are AI-generated and royalty-free."

type (
	AITracksHandler   struct{ tracks service.Track }
	RecordPlayHandler struct{ plays service.Play }
)

type (
	aiTracksOut struct {
		Disclaimer string     `json:"disclaimer"`
		Items      []trackOut `json:"items"`
	}

	playIn struct {
		TrackID  string `json:"trackId"`
		DeviceID string `json:"deviceId"`
	}

	playOut struct {
		Recorded bool `json:"recorded"`
	}
)

func NewAITracksHandler(tracks service.Track) AITracksHandler {
	return AITracksHandler{tracks: tracks}
}

func (h AITracksHandler) Method() string { return http.MethodGet }

func (h AITracksHandler) Path() string { return "/api/music/ai" }

func (h AITracksHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	mood, err := enumQuery(r, "mood", domain.Moods)
	if err != nil {
		return err
	}
	genre, err := enumQuery(r, "genre", domain.Genres)
	if err != nil {
		return err
	}

	tracks, err := h.tracks.ListAI(r.Context(), mood, genre)
	if err != nil {
		return err
	}

	w.SetJSONBody(commonhttp.Data(aiTracksOut{
		Disclaimer: AIDisclaimer,
		Items:      toTracksOut(tracks).Items,
	}))
	return nil
}

func NewRecordPlayHandler(plays service.Play) RecordPlayHandler {
	return RecordPlayHandler{plays: plays}
}

func (h RecordPlayHandler) Method() string { return http.MethodPost }

func (h RecordPlayHandler) Path() string { return "/api/music/play" }

func (h RecordPlayHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := jsonBody[playIn](r)
	if err != nil {
		return err
	}

	trackID, err := uuid.Parse(strings.TrimSpace(in.TrackID))
	if err != nil {
		return commonhttp.BadRequest("Invalid body: trackId", nil)
	}

	err = h.plays.Record(r.Context(), domain.TrackID{UUID: trackID}, in.DeviceID)
	if err != nil {
		return responseError(err)
	}

	w.SetStatusCode(http.StatusCreated)
	w.SetJSONBody(commonhttp.Data(playOut{Recorded: true}))
	return nil
}
