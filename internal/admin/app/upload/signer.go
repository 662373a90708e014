package upload

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"errors"
	"sort"
	"strconv"
	"strings"

	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

const (
	DefaultFolder = "online_music_limited"

	ResourceTypeImage = "image"
	ResourceTypeVideo = "video"
)

var ErrUploadNotConfigured = errors.New("cloudinary is not configured")

type (
	CloudinaryConfig struct {
		CloudName string
		APIKey    string
		APISecret string
		Folder    string
	}

	// Signature is everything a browser needs for a signed direct upload.
	Signature struct {
		CloudName    string
		APIKey       string
		Folder       string
		Timestamp    int64
		Signature    string
		ResourceType string
	}

	Signer struct {
		config CloudinaryConfig
		clock  pkgtime.Clock
	}
)

func NewSigner(config CloudinaryConfig, clock pkgtime.Clock) Signer {
	if strings.TrimSpace(config.Folder) == "" {
		config.Folder = DefaultFolder
	}

	return Signer{
		config: config,
		clock:  clock,
	}
}

func (s Signer) Configured() bool {
	return s.config.CloudName != "" && s.config.APIKey != "" && s.config.APISecret != ""
}

func (s Signer) Sign(ctx context.Context, resourceType, folder string) (Signature, error) {
	if !s.Configured() {
		return Signature{}, ErrUploadNotConfigured
	}

	if resourceType != ResourceTypeVideo {
		resourceType = ResourceTypeImage
	}

	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = s.config.Folder
	}

	timestamp := s.clock.Now(ctx).Unix()
	return Signature{
		CloudName: s.config.CloudName,
		APIKey:    s.config.APIKey,
		Folder:    folder,
		Timestamp: timestamp,
		Signature: SignParams(map[string]string{
			"folder":    folder,
			"timestamp": strconv.FormatInt(timestamp, 10),
		}, s.config.APISecret),
		ResourceType: resourceType,
	}, nil
}

// SignParams computes hex(sha1("k1=v1&k2=v2" + secret)) over keys in lexical order.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
