package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/klwxsrx/content-admin-service/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/content-admin-service/pkg/cmd"
	pkghttp "github.com/klwxsrx/content-admin-service/pkg/http"
)

const (
	defaultServiceURL = "http://localhost:8080"
	requestTimeout    = 5 * time.Second
)

func main() {
	ctx := context.Background()
	_ = pkgcmd.LoadDotEnv()

	infra := cmd.NewInfrastructureContainer(ctx)
	logger := infra.Logger.MustLoad()
	defer func() {
		if pkgcmd.HandleAppPanic(ctx, logger, recover()) {
			os.Exit(1)
		}
	}()

	client := infra.HTTPClientFactory.MustLoad().MustInitClient(
		cmd.DestinationHealthcheck,
		defaultServiceURL,
		pkghttp.WithClientTimeout(requestTimeout),
	)

	err := check(ctx, client)
	if err != nil {
		logger.WithError(err).Error(ctx, "service is unhealthy")
		os.Exit(1)
	}
}

func check(ctx context.Context, client pkghttp.Client) error {
	resp, err := client.NewRequest(ctx).Get(pkghttp.HealthPath)
	if err != nil {
		return fmt.Errorf("request health: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode())
	}

	return nil
}
