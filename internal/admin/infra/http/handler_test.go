package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/ratelimit"
	"github.com/klwxsrx/content-admin-service/internal/admin/app/service"
	servicemock "github.com/klwxsrx/content-admin-service/internal/admin/app/service/mock"
	"github.com/klwxsrx/content-admin-service/internal/admin/app/session"
	"github.com/klwxsrx/content-admin-service/internal/admin/app/upload"
	adminhttp "github.com/klwxsrx/content-admin-service/internal/admin/infra/http"
	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
	"github.com/klwxsrx/content-admin-service/pkg/log"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

var now = time.UnixMilli(1_700_000_000_000)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newServer(t *testing.T, credentials session.Credentials, secret string, signer upload.Signer) (pkghttp.Server, session.Codec, context.Context) {
	t.Helper()

	clock := pkgtime.NewAdjustableClock()
	ctx := clock.Set(context.Background(), now)
	codec := session.NewCodec(secret, clock)
	auth := service.NewAuthentication(credentials, codec, ratelimit.NewNoopLoginLimiter(), log.New(log.LevelDisabled))
	cookies := adminhttp.NewCookieFactory(true)

	server := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithErrorEncoder(commonhttp.EncodeError))
	server.Register(adminhttp.NewLoginHandler(auth, cookies, adminhttp.NewClientIPResolver(false)))
	server.Register(adminhttp.NewLogoutHandler(cookies))
	server.Register(adminhttp.NewSignUploadHandler(signer))
	return server, codec, ctx
}

func do(ctx context.Context, server http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	r := httptest.NewRequestWithContext(ctx, method, target, strings.NewReader(body))
	r.RemoteAddr = "10.0.0.1:5555"
	w := httptest.NewRecorder()
	server.ServeHTTP(w, r)

	var out envelope
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestLoginHandler(t *testing.T) {
	credentials := session.Credentials{Username: "admin", Password: "pw1"}

	tests := []struct {
		name          string
		credentials   session.Credentials
		secret        string
		body          string
		expectCode    int
		expectMessage string
	}{
		{
			name:          "not_configured",
			body:          `{"username":"admin","password":"pw1"}`,
			expectCode:    http.StatusInternalServerError,
			expectMessage: "Admin auth is not configured",
		},
		{
			name:          "malformed_json",
			credentials:   credentials,
			secret:        "s3cret",
			body:          `{`,
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid body",
		},
		{
			name:          "empty_password",
			credentials:   credentials,
			secret:        "s3cret",
			body:          `{"username":"admin"}`,
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid body",
		},
		{
			name:          "wrong_password",
			credentials:   credentials,
			secret:        "s3cret",
			body:          `{"username":"admin","password":"pw2"}`,
			expectCode:    http.StatusBadRequest,
			expectMessage: "Invalid credentials",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, _, ctx := newServer(t, tt.credentials, tt.secret, upload.NewSigner(upload.CloudinaryConfig{}, pkgtime.NewAdjustableClock()))
			w, out := do(ctx, server, http.MethodPost, "/api/admin/auth/login", tt.body)

			assert.Equal(t, tt.expectCode, w.Code)
			assert.False(t, out.Success)
			assert.Equal(t, tt.expectMessage, out.Error.Message)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestLoginHandler_ClientIP(t *testing.T) {
	tests := []struct {
		name     string
		trusted  bool
		expectIP string
	}{
		{"forwarded_for_ignored_by_default", false, "10.0.0.1"},
		{"forwarded_for_behind_trusted_proxy", true, "203.0.113.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			auth := servicemock.NewAuthentication(ctrl)
			auth.EXPECT().Login(gomock.Any(), "admin", "pw1", tt.expectIP).Return(service.SessionTokenData{}, service.ErrTooManyAttempts)

			server := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithErrorEncoder(commonhttp.EncodeError))
			server.Register(adminhttp.NewLoginHandler(auth, adminhttp.NewCookieFactory(false), adminhttp.NewClientIPResolver(tt.trusted)))

			r := httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/api/admin/auth/login",
				strings.NewReader(`{"username":"admin","password":"pw1"}`))
			r.RemoteAddr = "10.0.0.1:5555"
			r.Header.Set("X-Forwarded-For", "203.0.113.7")
			w := httptest.NewRecorder()
			server.ServeHTTP(w, r)

			assert.Equal(t, http.StatusTooManyRequests, w.Code)
		})
	}
}

func TestLoginHandler_SetsVerifiableCookie(t *testing.T) {
	t.Parallel()

	server, codec, ctx := newServer(t, session.Credentials{Username: "admin", Password: "pw1"}, "s3cret",
		upload.NewSigner(upload.CloudinaryConfig{}, pkgtime.NewAdjustableClock()))
	w, out := do(ctx, server, http.MethodPost, "/api/admin/auth/login", `{"username":" admin ","password":"pw1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, out.Success)
	assert.JSONEq(t, `{"loggedIn":true}`, string(out.Data))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, adminhttp.SessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, now.Add(session.TokenTTL).Unix(), cookie.Expires.Unix())

	subject, err := codec.Subject(ctx, cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	server, _, ctx := newServer(t, session.Credentials{}, "", upload.NewSigner(upload.CloudinaryConfig{}, pkgtime.NewAdjustableClock()))
	w, out := do(ctx, server, http.MethodPost, "/api/admin/auth/logout", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loggedOut":true}`, string(out.Data))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, adminhttp.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(now))
}

func TestSignUploadHandler(t *testing.T) {
	t.Parallel()

	clock := pkgtime.NewAdjustableClock()
	signer := upload.NewSigner(upload.CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret"}, clock)
	server, _, _ := newServer(t, session.Credentials{}, "", signer)
	ctx := clock.Set(context.Background(), time.Unix(1_700_000_000, 0))

	w, out := do(ctx, server, http.MethodPost, "/api/admin/cloudinary/sign", `{"resourceType":"video","folder":" tracks "}`)
	require.Equal(t, http.StatusOK, w.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(out.Data, &data))
	assert.Equal(t, "demo", data["cloudName"])
	assert.Equal(t, "key", data["apiKey"])
	assert.Equal(t, "tracks", data["folder"])
	assert.EqualValues(t, 1_700_000_000, data["timestamp"])
	assert.Equal(t, "video", data["resourceType"])
	assert.Equal(t, upload.SignParams(map[string]string{"folder": "tracks", "timestamp": "1700000000"}, "secret"), data["signature"])

	w, out = do(ctx, server, http.MethodPost, "/api/admin/cloudinary/sign", "not json")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(out.Data, &data))
	assert.Equal(t, upload.DefaultFolder, data["folder"])
	assert.Equal(t, "image", data["resourceType"])
}

func TestSignUploadHandler_NotConfigured(t *testing.T) {
	t.Parallel()

	server, _, ctx := newServer(t, session.Credentials{}, "", upload.NewSigner(upload.CloudinaryConfig{}, pkgtime.NewAdjustableClock()))
	w, out := do(ctx, server, http.MethodPost, "/api/admin/cloudinary/sign", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "BAD_REQUEST", out.Error.Code)
	assert.Equal(t, "Cloudinary is not configured", out.Error.Message)
}
