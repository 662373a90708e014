package service_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/content-admin-service/internal/content/app/service"
	"github.com/klwxsrx/content-admin-service/internal/content/domain"
	domainmock "github.com/klwxsrx/content-admin-service/internal/content/domain/mock"
)

func TestPlayService_Record(t *testing.T) {
	trackID := domain.TrackID{UUID: uuid.New()}

	tests := []struct {
		name           string
		deviceID       string
		expectDeviceID string
		expectErr      bool
	}{
		{name: "trimmed", deviceID: "  dev-1234  ", expectDeviceID: "dev-1234"},
		{name: "min_length", deviceID: "abcd", expectDeviceID: "abcd"},
		{name: "max_length", deviceID: strings.Repeat("d", 128), expectDeviceID: strings.Repeat("d", 128)},
		{name: "too_short_after_trim", deviceID: "  abc  ", expectErr: true},
		{name: "too_long", deviceID: strings.Repeat("d", 129), expectErr: true},
		{name: "empty", deviceID: "", expectErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, clock := testContext()
			ctrl := gomock.NewController(t)
			repo := domainmock.NewPlayEventRepository(ctrl)
			if !tt.expectErr {
				repo.EXPECT().NextID().Return(domain.PlayEventID{UUID: uuid.New()})
				repo.EXPECT().Store(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, event *domain.PlayEvent) error {
						assert.Equal(t, trackID, event.TrackID)
						assert.Equal(t, tt.expectDeviceID, event.DeviceID)
						assert.Equal(t, now, event.CreatedAt)
						return nil
					},
				)
			}

			err := service.NewPlay(repo, clock).Record(ctx, trackID, tt.deviceID)
			if tt.expectErr {
				assert.Equal(t, service.FieldError{Field: "deviceId"}, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
