//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Play=Play"
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	pkgstrings "github.com/klwxsrx/content-admin-service/pkg/strings"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

type (
	// Play records anonymous listening analytics, the track is not required to exist.
	Play interface {
		Record(ctx context.Context, trackID domain.TrackID, deviceID string) error
	}

	playService struct {
		playEventRepo domain.PlayEventRepository
		clock         pkgtime.Clock
	}
)

func NewPlay(playEventRepo domain.PlayEventRepository, clock pkgtime.Clock) Play {
	return &playService{
		playEventRepo: playEventRepo,
		clock:         clock,
	}
}

func (s *playService) Record(ctx context.Context, trackID domain.TrackID, deviceID string) error {
	deviceID = strings.TrimSpace(deviceID)
	if l := pkgstrings.RuneLen(deviceID); l < deviceIDMinLen || l > deviceIDMaxLen {
		return FieldError{Field: "deviceId"}
	}

	err := s.playEventRepo.Store(ctx, &domain.PlayEvent{
		ID:        s.playEventRepo.NextID(),
		TrackID:   trackID,
		DeviceID:  deviceID,
		CreatedAt: s.clock.Now(ctx),
	})
	if err != nil {
		return fmt.Errorf("store play event: %w", err)
	}

	return nil
}
