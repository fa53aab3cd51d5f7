package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v3"
	"github.com/jmoiron/sqlx"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultServerPort = 8080

type lifecycleResourcesIn struct {
	fx.In

	GatewayDB *sqlx.DB      `name:"db_gateway" optional:"true"`
	JournalDB *sqlx.DB      `name:"db_journal" optional:"true"`
	Redis     *redis.Client `optional:"true"`
}

// gatewayServer owns the listener and the pooled clients the modules share.
type gatewayServer struct {
	app     *fiber.App
	cfg     config.ConfigProvider
	logger  *slog.Logger
	address string
	closers []io.Closer
	served  chan error
}

func registerLifecycle(
	lifecycle fx.Lifecycle,
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	resources lifecycleResourcesIn,
) {
	port := cfg.GetInt("server.port")
	if port == 0 {
		port = defaultServerPort
	}

	server := &gatewayServer{
		app:     app,
		cfg:     cfg,
		logger:  logger,
		address: fmt.Sprintf(":%d", port),
		closers: sharedClosers(resources),
	}
	lifecycle.Append(fx.Hook{OnStart: server.start, OnStop: server.stop})
}

// sharedClosers lists each pool once. Single binaries may resolve the
// gateway and journal databases to the same handle.
func sharedClosers(resources lifecycleResourcesIn) []io.Closer {
	var closers []io.Closer
	if resources.GatewayDB != nil {
		closers = append(closers, resources.GatewayDB)
	}
	if resources.JournalDB != nil && resources.JournalDB != resources.GatewayDB {
		closers = append(closers, resources.JournalDB)
	}
	if resources.Redis != nil {
		closers = append(closers, resources.Redis)
	}
	return closers
}

func (s *gatewayServer) start(_ context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("app: bind gateway address %s: %w", s.address, err)
	}

	s.served = make(chan error, 1)
	go func() {
		err := s.app.Listener(listener)
		if err != nil && !errors.Is(err, net.ErrClosed) {
			s.logger.Error("gateway listener stopped", "address", s.address, "error", err)
		}
		s.served <- err
	}()

	s.cfg.OnChange(func() {
		s.logger.Info("gateway configuration reloaded", "source", s.cfg.Source())
	})
	s.cfg.WatchChanges()

	s.logger.Info("gateway listening", "address", s.address, "config_source", s.cfg.Source())
	return nil
}

func (s *gatewayServer) stop(ctx context.Context) error {
	s.cfg.StopWatching()

	var errs []error
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		errs = append(errs, err)
	}
	if s.served != nil {
		select {
		case err := <-s.served:
			if err != nil && !errors.Is(err, net.ErrClosed) {
				errs = append(errs, err)
			}
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
		}
	}
	for _, closer := range s.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.Info("gateway stopped")
	return nil
}
