//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "PlayEventRepository=PlayEventRepository"
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	// PlayEvent is anonymous: DeviceID is a client generated identifier, not personal data.
	PlayEvent struct {
		ID        PlayEventID
		TrackID   TrackID
		DeviceID  string
		CreatedAt time.Time
	}

	PlayEventRepository interface {
		NextID() PlayEventID
		Store(context.Context, *PlayEvent) error
	}

	PlayEventID struct{ uuid.UUID }
)
