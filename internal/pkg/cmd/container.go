package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	commonhttp "github.com/klwxsrx/content-admin-service/internal/pkg/http"
	"github.com/klwxsrx/content-admin-service/pkg/env"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
	"github.com/klwxsrx/content-admin-service/pkg/lazy"
	"github.com/klwxsrx/content-admin-service/pkg/log"
	"github.com/klwxsrx/content-admin-service/pkg/metric"
	"github.com/klwxsrx/content-admin-service/pkg/observability"
	"github.com/klwxsrx/content-admin-service/pkg/sql"
	pkgtime "github.com/klwxsrx/content-admin-service/pkg/time"
)

const metricsNamespace = "content"

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[pkghttp.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	DBMigrations      lazy.Loader[SQLMigrations]
	DB                lazy.Loader[sql.Database]
	Redis             lazy.Loader[*redis.Client]
	Observer          lazy.Loader[observability.Observer]
	Clock             lazy.Loader[pkgtime.Clock]
	Metrics           lazy.Loader[metric.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	metricsRegistry := metricsRegistryProvider()
	metrics := metricsProvider(metricsRegistry)
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(ctx, logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(db, metricsRegistry, observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		DBMigrations:      sqlMigrationsProvider(ctx, db, logger),
		DB:                db,
		Redis:             redisProvider(),
		Observer:          observer,
		Clock:             lazy.Value[pkgtime.Clock](pkgtime.NewAdjustableClock()),
		Metrics:           metrics,
		Logger:            logger,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	i.Redis.IfLoaded(func(client *redis.Client) {
		if client == nil {
			return
		}
		if err := client.Close(); err != nil {
			i.Logger.MustLoad().WithError(err).Warn(ctx, "failed to close redis client")
		}
	})
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func metricsRegistryProvider() lazy.Loader[*prometheus.Registry] {
	return lazy.New(func() (*prometheus.Registry, error) {
		return metric.NewRegistry(), nil
	})
}

func metricsProvider(registry lazy.Loader[*prometheus.Registry]) lazy.Loader[metric.Metrics] {
	return lazy.New(func() (metric.Metrics, error) {
		return metric.NewPrometheus(registry.MustLoad(), metricsNamespace), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevelStr, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		logLevel, ok := logLevelMap[logLevelStr]
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(
				logger.MustLoad(),
				observability.FieldRequestID,
				observability.FieldAdminSubject,
			),
		), nil
	})
}

func sqlDatabaseProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := &sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.ParseWithDefault("SQL_MAX_OPEN_CONNECTIONS", 10)),
			MaxIdleConnections: env.Must(env.ParseWithDefault("SQL_MAX_IDLE_CONNECTIONS", 5)),
		}
		sqlConnTimeout := env.Must(env.ParseOptional[time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(ctx, sqlConfig, logger.MustLoad())
		if err != nil {
			return nil, fmt.Errorf("open sql connection: %w", err)
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

// redisProvider loads nil when REDIS_ADDRESS is not set.
func redisProvider() lazy.Loader[*redis.Client] {
	return lazy.New(func() (*redis.Client, error) {
		address := env.Must(env.ParseOptional[string]("REDIS_ADDRESS"))
		if address == nil {
			return nil, nil
		}

		password := env.Must(env.ParseWithDefault("REDIS_PASSWORD", ""))
		return redis.NewClient(&redis.Options{
			Addr:     *address,
			Password: password,
		}), nil
	})
}

func httpServerProvider(
	db lazy.Loader[sql.Database],
	metricsRegistry lazy.Loader[*prometheus.Registry],
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[pkghttp.Server] {
	return lazy.New(func() (pkghttp.Server, error) {
		address := env.Must(env.ParseWithDefault("HTTP_ADDRESS", pkghttp.DefaultServerAddress))

		return pkghttp.NewServer(
			address,
			pkghttp.WithHealthCheck(func(r *http.Request) error {
				var err error
				db.IfLoaded(func(db sql.Database) { err = db.Ping(r.Context()) })
				return err
			}),
			pkghttp.WithMetricsEndpoint(metric.NewHTTPHandler(metricsRegistry.MustLoad())),
			pkghttp.WithObservability(observer.MustLoad(), pkghttp.ObservabilityFieldExtractors{
				observability.FieldRequestID: {
					pkghttp.ObservabilityFieldHeaderExtractor(commonhttp.RequestIDHeader),
					pkghttp.ObservabilityFieldRandomUUIDExtractor(),
				},
			}),
			pkghttp.WithResponseHeader(observer.MustLoad(), observability.FieldRequestID, commonhttp.RequestIDHeader),
			pkghttp.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError),
			pkghttp.WithMetrics(metrics.MustLoad()),
			pkghttp.WithErrorEncoder(commonhttp.EncodeError),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			pkghttp.WithRequestObservability(observer.MustLoad(), observability.FieldRequestID, commonhttp.RequestIDHeader),
			pkghttp.WithRequestMetrics(metrics.MustLoad()),
			pkghttp.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
