package admin

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/ratelimit"
	"github.com/klwxsrx/content-admin-service/internal/admin/app/service"
	"github.com/klwxsrx/content-admin-service/internal/admin/app/session"
	"github.com/klwxsrx/content-admin-service/internal/admin/app/upload"
	"github.com/klwxsrx/content-admin-service/internal/admin/infra/http"
	adminredis "github.com/klwxsrx/content-admin-service/internal/admin/infra/redis"
	"github.com/klwxsrx/content-admin-service/pkg/env"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
	"github.com/klwxsrx/content-admin-service/pkg/lazy"
	"github.com/klwxsrx/content-admin-service/pkg/log"
	"github.com/klwxsrx/content-admin-service/pkg/observability"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

const productionEnv = "production"

type DependencyContainer struct {
	AuthService lazy.Loader[service.Authentication]

	gate              lazy.Loader[pkghttp.Middleware]
	loginHandler      lazy.Loader[http.LoginHandler]
	logoutHandler     lazy.Loader[http.LogoutHandler]
	signUploadHandler lazy.Loader[http.SignUploadHandler]
}

func NewDependencyContainer(
	redisClient lazy.Loader[*redis.Client],
	observer lazy.Loader[observability.Observer],
	clock lazy.Loader[pkgtime.Clock],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	loginLimiter := loginLimiterProvider(redisClient)
	authService := authServiceProvider(loginLimiter, clock, logger)
	signer := signerProvider(clock)
	cookies := cookieFactoryProvider()
	clientIPs := clientIPResolverProvider()

	return DependencyContainer{
		AuthService: authService,
		gate: lazy.New(func() (pkghttp.Middleware, error) {
			return http.NewGate(authService.MustLoad(), observer.MustLoad()), nil
		}),
		loginHandler: lazy.New(func() (http.LoginHandler, error) {
			return http.NewLoginHandler(authService.MustLoad(), cookies.MustLoad(), clientIPs.MustLoad()), nil
		}),
		logoutHandler: lazy.New(func() (http.LogoutHandler, error) {
			return http.NewLogoutHandler(cookies.MustLoad()), nil
		}),
		signUploadHandler: lazy.New(func() (http.SignUploadHandler, error) {
			return http.NewSignUploadHandler(signer.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(server pkghttp.Server) {
	server.Intercept(c.gate.MustLoad())

	server.Register(c.loginHandler.MustLoad())
	server.Register(c.logoutHandler.MustLoad())
	server.Register(c.signUploadHandler.MustLoad())
}

func loginLimiterProvider(redisClient lazy.Loader[*redis.Client]) lazy.Loader[ratelimit.LoginLimiter] {
	return lazy.New(func() (ratelimit.LoginLimiter, error) {
		client := redisClient.MustLoad()
		if client == nil {
			return ratelimit.NewNoopLoginLimiter(), nil
		}

		return adminredis.NewLoginLimiter(client, adminredis.LoginLimiterConfig{
			MaxAttempts:            env.Must(env.ParseWithDefault("ADMIN_LOGIN_MAX_ATTEMPTS", adminredis.DefaultMaxLoginAttempts)),
			Cooldown:               env.Must(env.ParseWithDefault("ADMIN_LOGIN_COOLDOWN", adminredis.DefaultLoginCooldown)),
			EnableUsernameThrottle: env.Must(env.ParseWithDefault("ADMIN_LOGIN_USERNAME_THROTTLE", true)),
			EnableIPThrottle:       env.Must(env.ParseWithDefault("ADMIN_LOGIN_IP_THROTTLE", true)),
		}), nil
	})
}

func authServiceProvider(
	loginLimiter lazy.Loader[ratelimit.LoginLimiter],
	clock lazy.Loader[pkgtime.Clock],
	logger lazy.Loader[log.Logger],
) lazy.Loader[service.Authentication] {
	return lazy.New(func() (service.Authentication, error) {
		credentials := session.Credentials{
			Username: env.Must(env.ParseWithDefault("ADMIN_USER", "")),
			Password: env.Must(env.ParseWithDefault("ADMIN_PASS", "")),
		}
		codec := session.NewCodec(env.Must(env.ParseWithDefault("ADMIN_SESSION_SECRET", "")), clock.MustLoad())
		if !credentials.Configured() || !codec.Configured() {
			logger.MustLoad().Warn(context.Background(), "admin auth is not configured, admin routes are closed")
		}

		return service.NewAuthentication(credentials, codec, loginLimiter.MustLoad(), logger.MustLoad()), nil
	})
}

func signerProvider(clock lazy.Loader[pkgtime.Clock]) lazy.Loader[upload.Signer] {
	return lazy.New(func() (upload.Signer, error) {
		return upload.NewSigner(upload.CloudinaryConfig{
			CloudName: env.Must(env.ParseWithDefault("CLOUDINARY_CLOUD_NAME", "")),
			APIKey:    env.Must(env.ParseWithDefault("CLOUDINARY_API_KEY", "")),
			APISecret: env.Must(env.ParseWithDefault("CLOUDINARY_API_SECRET", "")),
			Folder:    env.Must(env.ParseWithDefault("CLOUDINARY_FOLDER", upload.DefaultFolder)),
		}, clock.MustLoad()), nil
	})
}

func cookieFactoryProvider() lazy.Loader[http.CookieFactory] {
	return lazy.New(func() (http.CookieFactory, error) {
		appEnv := env.Must(env.ParseWithDefault("APP_ENV", ""))
		return http.NewCookieFactory(appEnv == productionEnv), nil
	})
}

func clientIPResolverProvider() lazy.Loader[http.ClientIPResolver] {
	return lazy.New(func() (http.ClientIPResolver, error) {
		return http.NewClientIPResolver(env.Must(env.ParseWithDefault("ADMIN_TRUST_PROXY_HEADERS", false))), nil
	})
}
