package cmd_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/content-admin-service/pkg/cmd"
	"github.com/klwxsrx/content-admin-service/pkg/log"
)

func TestRun(t *testing.T) {
	t.Parallel()

	errJob := errors.New("job failed")
	tests := []struct {
		name        string
		firstJobErr error
		expectedErr error
	}{
		{"first job completes", nil, nil},
		{"first job fails", errJob, errJob},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := cmd.Run(
				context.Background(),
				log.New(log.LevelDisabled),
				func(context.Context) error { return tt.firstJobErr },
				func(ctx context.Context) error {
					<-ctx.Done()
					return ctx.Err()
				},
			)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandleAppPanic(t *testing.T) {
	t.Parallel()

	caught := func() (caught bool) {
		defer func() { caught = cmd.HandleAppPanic(context.Background(), log.New(log.LevelDisabled), recover()) }()
		panic("boom")
	}()
	assert.True(t, caught)
	assert.False(t, cmd.HandleAppPanic(context.Background(), log.New(log.LevelDisabled), nil))
}

func TestLoadDotEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("CONTENT_DOTENV_TEST=from-file\n"), 0o600))
	t.Setenv("CONTENT_DOTENV_TEST", "")
	require.NoError(t, os.Unsetenv("CONTENT_DOTENV_TEST"))

	require.NoError(t, cmd.LoadDotEnv(file, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "from-file", os.Getenv("CONTENT_DOTENV_TEST"))
}
