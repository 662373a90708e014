//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Authentication=Authentication"
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/ratelimit"
	"github.com/klwxsrx/content-admin-service/internal/admin/app/session"
	"github.com/klwxsrx/content-admin-service/pkg/log"
)

var (
	ErrNotConfigured      = errors.New("admin auth is not configured")
	ErrInvalidInput       = errors.New("username and password must be not empty")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type (
	Authentication interface {
		Login(ctx context.Context, username, password, clientIP string) (SessionTokenData, error)
		Authenticate(ctx context.Context, token string) (subject string, ok bool)
	}

	SessionTokenData struct {
		Token     string
		ValidTill time.Time
	}

	authenticationService struct {
		credentials session.Credentials
		codec       session.Codec
		limiter     ratelimit.LoginLimiter
		logger      log.Logger
	}
)

func NewAuthentication(
	credentials session.Credentials,
	codec session.Codec,
	limiter ratelimit.LoginLimiter,
	logger log.Logger,
) Authentication {
	return &authenticationService{
		credentials: credentials,
		codec:       codec,
		limiter:     limiter,
		logger:      logger,
	}
}

func (s authenticationService) Login(ctx context.Context, username, password, clientIP string) (SessionTokenData, error) {
	if !s.credentials.Configured() || !s.codec.Configured() {
		return SessionTokenData{}, ErrNotConfigured
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return SessionTokenData{}, ErrInvalidInput
	}

	allowed, err := s.limiter.Check(ctx, username, clientIP)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to check login attempts")
	} else if !allowed {
		return SessionTokenData{}, ErrTooManyAttempts
	}

	if !s.credentials.Match(username, password) {
		if err = s.limiter.Fail(ctx, username, clientIP); err != nil {
			s.logger.WithError(err).Warn(ctx, "failed to register failed login attempt")
		}
		return SessionTokenData{}, ErrInvalidCredentials
	}

	if err = s.limiter.Reset(ctx, username, clientIP); err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to reset login attempts")
	}

	token, err := s.codec.Issue(ctx, username)
	if err != nil {
		return SessionTokenData{}, fmt.Errorf("issue session token: %w", err)
	}

	return SessionTokenData{
		Token:     token.Value,
		ValidTill: token.ExpiresAt,
	}, nil
}

func (s authenticationService) Authenticate(ctx context.Context, token string) (string, bool) {
	subject, err := s.codec.Subject(ctx, token)
	if err != nil {
		s.logger.WithError(err).Debug(ctx, "session token rejected")
		return "", false
	}

	return subject, true
}
