package main

import (
	"context"
	"os"

	"github.com/klwxsrx/content-admin-service/internal/admin"
	"github.com/klwxsrx/content-admin-service/internal/content"
	"github.com/klwxsrx/content-admin-service/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/content-admin-service/pkg/cmd"
)

func main() {
	ctx := context.Background()
	dotEnvErr := pkgcmd.LoadDotEnv()

	infra := cmd.NewInfrastructureContainer(ctx)
	logger := infra.Logger.MustLoad()
	defer func() {
		if pkgcmd.HandleAppPanic(ctx, logger, recover()) {
			os.Exit(1)
		}
	}()
	defer infra.Close(ctx)

	if dotEnvErr != nil {
		logger.WithError(dotEnvErr).Warn(ctx, "failed to load .env file")
	}

	adminContainer := admin.NewDependencyContainer(
		infra.Redis,
		infra.Observer,
		infra.Clock,
		infra.Logger,
	)
	contentContainer := content.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.Clock,
	)

	httpServer := infra.HTTPServer.MustLoad()
	adminContainer.MustRegisterHTTPHandlers(httpServer)
	contentContainer.MustRegisterHTTPHandlers(httpServer)

	logger.Info(ctx, "app is ready")
	pkgcmd.MustRun(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
