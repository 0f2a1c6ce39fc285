package client

import (
	"context"
	"errors"

	"github.com/isavelev/go-cart-keeper/internal/adapter"
	"github.com/isavelev/go-cart-keeper/internal/identity"
	"github.com/isavelev/go-cart-keeper/internal/logger"
	"github.com/isavelev/go-cart-keeper/internal/service"
	"github.com/isavelev/go-cart-keeper/internal/store"
	"github.com/isavelev/go-cart-keeper/internal/workers"
)

// ErrNoIdentitySource is returned by NewApp when no identity source is
// supplied; without one the session could never leave the unresolved state.
var ErrNoIdentitySource = errors.New("no identity source")

// App is the composition root of the client process. It owns the wiring
// order: the identity subscription is the last thing started, so every
// listener is registered before the first session transition can fire.
type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	source   identity.Source
	catalog  adapter.CatalogAdapter
	logger   *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	storages *store.ClientStorages,
	source identity.Source,
	catalog adapter.CatalogAdapter,
	log *logger.Logger,
) (*App, error) {
	if source == nil {
		return nil, ErrNoIdentitySource
	}

	return &App{
		services: services,
		storages: storages,
		source:   source,
		catalog:  catalog,
		logger:   log,
	}, nil
}

// Run starts the background workers and blocks until ctx is cancelled, then
// stops the write-back jobs and closes the local store.
func (a *App) Run(ctx context.Context) error {
	ws := workers.NewWorkers(
		a.identityWorker(),
		a.catalogWarmupWorker(ctx),
	)
	ws.Run()

	a.logger.Info().Str("func", "client.App.Run").Msg("client started")
	<-ctx.Done()

	a.logger.Info().Str("func", "client.App.Run").Msg("shutting down")
	a.services.Stop()

	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			return err
		}
	}
	return nil
}

// identityWorker connects the identity event stream to the session state
// machine. Every emission, including the initial resolution, flows through
// session.Manager.Apply.
func (a *App) identityWorker() workers.Worker {
	return workers.WorkerFunc(func() {
		a.source.Subscribe(func(user *identity.User) {
			a.services.SessionManager.Apply(user)
		})
	})
}

// catalogWarmupWorker fetches the first catalog page in the background so the
// product list is warm by the time it is first rendered. Failures are logged
// and ignored; the catalog is retried on demand.
func (a *App) catalogWarmupWorker(ctx context.Context) workers.Worker {
	if a.catalog == nil {
		return nil
	}

	return workers.WorkerFunc(func() {
		go func() {
			products, err := a.catalog.ListProducts(ctx, 30, 0)
			if err != nil {
				a.logger.Warn().Err(err).
					Str("func", "client.App.catalogWarmupWorker").
					Msg("catalog warmup failed")
				return
			}
			a.logger.Debug().
				Str("func", "client.App.catalogWarmupWorker").
				Int("products", len(products)).
				Msg("catalog warmed up")
		}()
	})
}
