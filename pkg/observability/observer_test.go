package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/klwxsrx/content-admin-service/pkg/log"
	"github.com/klwxsrx/content-admin-service/pkg/observability"
)

func TestObserver_WithField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := log.NewWithCore(core)
	obs := observability.New(observability.WithFieldsLogging(logger, observability.FieldRequestID))

	ctx := obs.WithField(context.Background(), observability.FieldRequestID, "req-1")
	ctx = obs.WithField(ctx, observability.FieldAdminSubject, "admin")

	assert.Equal(t, "req-1", obs.Field(ctx, observability.FieldRequestID))
	assert.Equal(t, "admin", obs.Field(ctx, observability.FieldAdminSubject))
	assert.Empty(t, obs.Field(context.Background(), observability.FieldRequestID))

	logger.Info(ctx, "handled")
	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["requestID"])
	assert.NotContains(t, fields, "adminSubject")
}
