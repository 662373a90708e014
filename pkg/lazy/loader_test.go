package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/content-admin-service/pkg/lazy"
)

func TestLoader_LoadsOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	loader := lazy.New(func() (int, error) {
		calls++
		return 42, nil
	})

	loaded := false
	loader.IfLoaded(func(int) { loaded = true })
	assert.False(t, loaded)

	assert.Equal(t, 42, loader.MustLoad())
	value, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, calls)

	loader.IfLoaded(func(v int) { loaded = v == 42 })
	assert.True(t, loaded)
}

func TestLoader_ProviderError(t *testing.T) {
	t.Parallel()

	errProvider := errors.New("boom")
	loader := lazy.New(func() (string, error) {
		return "", errProvider
	})

	_, err := loader.Load()
	assert.ErrorIs(t, err, errProvider)
	assert.Panics(t, func() { loader.MustLoad() })

	called := false
	loader.IfLoaded(func(string) { called = true })
	assert.False(t, called)
}
