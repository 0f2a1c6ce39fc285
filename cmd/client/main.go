package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/isavelev/go-cart-keeper/internal/adapter"
	"github.com/isavelev/go-cart-keeper/internal/client"
	"github.com/isavelev/go-cart-keeper/internal/config"
	"github.com/isavelev/go-cart-keeper/internal/identity"
	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/internal/service"
	"github.com/isavelev/go-cart-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("cart-keeper-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog adapter")
	}

	services := service.NewClientServices(cfg, storages, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, err := newIdentitySource(ctx, cfg.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create identity source")
	}

	app, err := client.NewApp(services, storages, source, catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// newIdentitySource selects the identity source implementation from
// cfg.Mode. "firebase" verifies announced ID tokens against the provider,
// "token" parses claims offline, "manual" expects in-process announcements.
func newIdentitySource(ctx context.Context, cfg config.Identity, log *logger.Logger) (identity.Source, error) {
	switch cfg.Mode {
	case "firebase":
		return identity.NewFirebaseSource(ctx, cfg, log)
	case "token":
		return identity.NewTokenSource(log), nil
	default:
		return identity.NewManualSource(), nil
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
