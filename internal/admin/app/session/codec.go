package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

const (
	TokenTTL = 12 * time.Hour

	tokenSeparator = "."
)

var (
	ErrConfigurationMissing = errors.New("session secret is not configured")
	ErrMalformedToken       = errors.New("malformed session token")
	ErrExpiredToken         = errors.New("session token is expired")
	ErrSignatureMismatch    = errors.New("session token signature mismatch")
)

type (
	Token struct {
		Value     string
		Subject   string
		ExpiresAt time.Time
	}

	// Codec issues and verifies "subject.expiresAtMillis.signature" tokens.
	Codec struct {
		secret []byte
		clock  pkgtime.Clock
	}
)

func NewCodec(secret string, clock pkgtime.Clock) Codec {
	return Codec{
		secret: []byte(secret),
		clock:  clock,
	}
}

func (c Codec) Configured() bool {
	return len(c.secret) > 0
}

func (c Codec) Issue(ctx context.Context, subject string) (Token, error) {
	if !c.Configured() {
		return Token{}, ErrConfigurationMissing
	}
	if subject == "" || strings.Contains(subject, tokenSeparator) {
		return Token{}, fmt.Errorf("%w: invalid subject", ErrMalformedToken)
	}

	expiresAt := c.clock.Now(ctx).Add(TokenTTL)
	payload := subject + tokenSeparator + strconv.FormatInt(expiresAt.UnixMilli(), 10)
	return Token{
		Value:     payload + tokenSeparator + base64.RawURLEncoding.EncodeToString(c.sign(payload)),
		Subject:   subject,
		ExpiresAt: time.UnixMilli(expiresAt.UnixMilli()),
	}, nil
}

func (c Codec) Verify(ctx context.Context, token string) bool {
	_, err := c.Subject(ctx, token)
	return err == nil
}

// Subject returns the subject of a valid token or the reason it is rejected.
func (c Codec) Subject(ctx context.Context, token string) (string, error) {
	if !c.Configured() {
		return "", ErrConfigurationMissing
	}

	parts := strings.Split(token, tokenSeparator)
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}

	subject, expiry, signature := parts[0], parts[1], parts[2]
	if subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrMalformedToken)
	}

	expiresAtMillis, err := strconv.ParseFloat(expiry, 64)
	if err != nil || math.IsNaN(expiresAtMillis) || math.IsInf(expiresAtMillis, 0) {
		return "", fmt.Errorf("%w: invalid expiry", ErrMalformedToken)
	}
	if expiresAtMillis <= float64(c.clock.Now(ctx).UnixMilli()) {
		return "", ErrExpiredToken
	}

	provided, err := base64.RawURLEncoding.Strict().DecodeString(strings.TrimRight(signature, "="))
	if err != nil {
		return "", fmt.Errorf("%w: decode signature: %w", ErrSignatureMismatch, err)
	}

	expected := c.sign(subject + tokenSeparator + expiry)
	if !ConstantTimeEqual(provided, expected) {
		return "", ErrSignatureMismatch
	}

	return subject, nil
}

func (c Codec) sign(payload string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}

// ConstantTimeEqual returns early only on length mismatch.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}

	return diff == 0
}
