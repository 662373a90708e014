package upload_test

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/upload"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

func TestSignParams(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		sha1Hex("folder=f&timestamp=1700000000secret"),
		upload.SignParams(map[string]string{"timestamp": "1700000000", "folder": "f"}, "secret"),
	)
	assert.Equal(t, sha1Hex("secret"), upload.SignParams(nil, "secret"))
}

func TestSigner_Sign(t *testing.T) {
	t.Parallel()

	config := upload.CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret"}
	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Set(context.Background(), time.Unix(1_700_000_000, 500))

	tests := []struct {
		name         string
		resourceType string
		folder       string
		expectType   string
		expectFolder string
	}{
		{"defaults", "", "", upload.ResourceTypeImage, upload.DefaultFolder},
		{"video", "video", "tracks", upload.ResourceTypeVideo, "tracks"},
		{"unknown_type_is_image", "raw", " covers ", upload.ResourceTypeImage, "covers"},
		{"blank_folder", "image", "   ", upload.ResourceTypeImage, upload.DefaultFolder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sig, err := upload.NewSigner(config, clock).Sign(ctx, tt.resourceType, tt.folder)
			require.NoError(t, err)
			assert.Equal(t, upload.Signature{
				CloudName:    "demo",
				APIKey:       "key",
				Folder:       tt.expectFolder,
				Timestamp:    1_700_000_000,
				Signature:    sha1Hex("folder=" + tt.expectFolder + "&timestamp=1700000000secret"),
				ResourceType: tt.expectType,
			}, sig)
		})
	}
}

func TestSigner_Sign_ConfiguredFolder(t *testing.T) {
	t.Parallel()

	config := upload.CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret", Folder: "custom"}
	sig, err := upload.NewSigner(config, pkgtime.NewAdjustableClock()).Sign(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "custom", sig.Folder)
}

func TestSigner_Sign_NotConfigured(t *testing.T) {
	t.Parallel()

	for _, config := range []upload.CloudinaryConfig{
		{APIKey: "key", APISecret: "secret"},
		{CloudName: "demo", APISecret: "secret"},
		{CloudName: "demo", APIKey: "key"},
	} {
		_, err := upload.NewSigner(config, pkgtime.NewAdjustableClock()).Sign(context.Background(), "", "")
		assert.ErrorIs(t, err, upload.ErrUploadNotConfigured)
	}
}
