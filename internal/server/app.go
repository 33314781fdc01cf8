// Package server initializes and runs the profile service: it wires the
// configured store backend, the vault-backed secret cache and the HTTP
// endpoint, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/profilekeeper/internal/logging"
	"github.com/dmitrijs2005/profilekeeper/internal/secrets"
	"github.com/dmitrijs2005/profilekeeper/internal/server/config"
	"github.com/dmitrijs2005/profilekeeper/internal/server/db"
	"github.com/dmitrijs2005/profilekeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/profilekeeper/internal/server/profiles"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repoManager    db.RepositoryManager
	profileService *profiles.Service
	secretCache    *secrets.Cache
	httpServer     *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	manager, err := newRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	fetcher, err := secrets.NewManager(ctx, secrets.ManagerOptions{
		Region:          c.AWSRegion,
		AccessKeyID:     c.AWSAccessKeyID,
		SecretAccessKey: c.AWSSecretAccessKey,
		BaseEndpoint:    c.AWSBaseEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("vault init error: %w", err)
	}

	cache := secrets.NewCache(fetcher, c.SecretName)
	service := profiles.NewService(manager.Profiles())
	httpServer := httpapi.NewServer(c, logger, service, cache)

	return &App{
		config:         c,
		logger:         logger,
		repoManager:    manager,
		profileService: service,
		secretCache:    cache,
		httpServer:     httpServer,
	}, nil
}

func newRepositoryManager(ctx context.Context, c *config.Config) (db.RepositoryManager, error) {
	switch c.StoreDriver {
	case config.StoreDriverPostgres:
		return db.NewPostgresRepositoryManager(c.DatabaseDSN)
	case config.StoreDriverDynamo:
		return db.NewDynamoRepositoryManager(ctx, db.DynamoOptions{
			Table:           c.DynamoTable,
			Region:          c.AWSRegion,
			AccessKeyID:     c.AWSAccessKeyID,
			SecretAccessKey: c.AWSSecretAccessKey,
			BaseEndpoint:    c.AWSBaseEndpoint,
		})
	default:
		return nil, fmt.Errorf("unknown store driver: %s", c.StoreDriver)
	}
}

func (app *App) Run(ctx context.Context) error {

	app.logger.Info(ctx, "starting app", "driver", app.config.StoreDriver, "port", app.config.Port)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.httpServer.Run(gctx)
	})

	err := g.Wait()

	if cerr := app.repoManager.Close(); cerr != nil {
		app.logger.Error(ctx, "store close error", "error", cerr.Error())
	}

	if err != nil {
		return err
	}

	app.logger.Info(ctx, "server stopped gracefully")
	return nil
}
