package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/ratelimit"
	ratelimitmock "github.com/klwxsrx/content-admin-service/internal/admin/app/ratelimit/mock"
	"github.com/klwxsrx/content-admin-service/internal/admin/app/service"
	"github.com/klwxsrx/content-admin-service/internal/admin/app/session"
	"github.com/klwxsrx/content-admin-service/pkg/log"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

const (
	testUser   = "admin"
	testPass   = "pw1"
	testSecret = "s3cret"
	testIP     = "10.0.0.1"
)

func TestAuthentication_Login(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	tests := []struct {
		name        string
		credentials session.Credentials
		secret      string
		username    string
		password    string
		limiter     func(ctrl *gomock.Controller) ratelimit.LoginLimiter
		expectErr   error
	}{
		{
			name:        "success_resets_limiter",
			credentials: session.Credentials{Username: testUser, Password: testPass},
			secret:      testSecret,
			username:    " admin ",
			password:    testPass,
			limiter: func(ctrl *gomock.Controller) ratelimit.LoginLimiter {
				mock := ratelimitmock.NewLoginLimiter(ctrl)
				mock.EXPECT().Check(gomock.Any(), testUser, testIP).Return(true, nil)
				mock.EXPECT().Reset(gomock.Any(), testUser, testIP).Return(nil)
				return mock
			},
		},
		{
			name:        "success_when_limiter_fails",
			credentials: session.Credentials{Username: testUser, Password: testPass},
			secret:      testSecret,
			username:    testUser,
			password:    testPass,
			limiter: func(ctrl *gomock.Controller) ratelimit.LoginLimiter {
				mock := ratelimitmock.NewLoginLimiter(ctrl)
				mock.EXPECT().Check(gomock.Any(), testUser, testIP).Return(false, errors.New("unavailable"))
				mock.EXPECT().Reset(gomock.Any(), testUser, testIP).Return(errors.New("unavailable"))
				return mock
			},
		},
		{
			name:        "not_configured_without_secret",
			credentials: session.Credentials{Username: testUser, Password: testPass},
			username:    testUser,
			password:    testPass,
			limiter: func(ctrl *gomock.Controller) ratelimit.LoginLimiter {
				return ratelimitmock.NewLoginLimiter(ctrl)
			},
			expectErr: service.ErrNotConfigured,
		},
		{
			name:        "not_configured_without_password",
			credentials: session.Credentials{Username: testUser},
			secret:      testSecret,
			username:    testUser,
			password:    testPass,
			limiter: func(ctrl *gomock.Controller) ratelimit.LoginLimiter {
				return ratelimitmock.NewLoginLimiter(ctrl)
			},
			expectErr: service.ErrNotConfigured,
		},
		{
			name:        "empty_username",
			credentials: session.Credentials{Username: testUser, Password: testPass},
			secret:      testSecret,
			username:    "   ",
			password:    testPass,
			limiter: func(ctrl *gomock.Controller) ratelimit.LoginLimiter {
				return ratelimitmock.NewLoginLimiter(ctrl)
			},
			expectErr: service.ErrInvalidInput,
		},
		{
			name:        "empty_password",
			credentials: session.Credentials{Username: testUser, Password: testPass},
			secret:      testSecret,
			username:    testUser,
			limiter: func(ctrl *gomock.Controller) ratelimit.LoginLimiter {
				return ratelimitmock.NewLoginLimiter(ctrl)
			},
			expectErr: service.ErrInvalidInput,
		},
		{
			name:        "too_many_attempts",
			credentials: session.Credentials{Username: testUser, Password: testPass},
			secret:      testSecret,
			username:    testUser,
			password:    testPass,
			limiter: func(ctrl *gomock.Controller) ratelimit.LoginLimiter {
				mock := ratelimitmock.NewLoginLimiter(ctrl)
				mock.EXPECT().Check(gomock.Any(), testUser, testIP).Return(false, nil)
				return mock
			},
			expectErr: service.ErrTooManyAttempts,
		},
		{
			name:        "invalid_credentials_registers_failure",
			credentials: session.Credentials{Username: testUser, Password: testPass},
			secret:      testSecret,
			username:    testUser,
			password:    "pw1x",
			limiter: func(ctrl *gomock.Controller) ratelimit.LoginLimiter {
				mock := ratelimitmock.NewLoginLimiter(ctrl)
				mock.EXPECT().Check(gomock.Any(), testUser, testIP).Return(true, nil)
				mock.EXPECT().Fail(gomock.Any(), testUser, testIP).Return(nil)
				return mock
			},
			expectErr: service.ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			clock := pkgtime.NewAdjustableClock()
			ctx := clock.Set(context.Background(), now)
			codec := session.NewCodec(tt.secret, clock)

			auth := service.NewAuthentication(tt.credentials, codec, tt.limiter(ctrl), log.New(log.LevelDisabled))
			token, err := auth.Login(ctx, tt.username, tt.password, testIP)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, now.Add(session.TokenTTL), token.ValidTill)

			subject, ok := auth.Authenticate(ctx, token.Token)
			assert.True(t, ok)
			assert.Equal(t, testUser, subject)
		})
	}
}

func TestAuthentication_Authenticate(t *testing.T) {
	t.Parallel()

	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Set(context.Background(), time.UnixMilli(1_700_000_000_000))
	auth := service.NewAuthentication(
		session.Credentials{Username: testUser, Password: testPass},
		session.NewCodec(testSecret, clock),
		ratelimit.NewNoopLoginLimiter(),
		log.New(log.LevelDisabled),
	)

	token, err := auth.Login(ctx, testUser, testPass, "")
	require.NoError(t, err)

	_, ok := auth.Authenticate(ctx, token.Token+"x")
	assert.False(t, ok)

	_, ok = auth.Authenticate(clock.Set(ctx, token.ValidTill), token.Token)
	assert.False(t, ok)

	_, ok = auth.Authenticate(ctx, "")
	assert.False(t, ok)
}
