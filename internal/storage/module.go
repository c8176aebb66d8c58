package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/personauth/internal/config"
	"github.com/polkiloo/personauth/internal/domain/repository"
	"github.com/polkiloo/personauth/internal/storage/memory"
	"github.com/polkiloo/personauth/internal/storage/postgres"
)

// Backend is a person repository owning releasable resources.
type Backend interface {
	repository.PersonRepository
	repository.HealthChecker
	Close()
}

// Module wires the person store selected by configuration.
var Module = fx.Options(
	fx.Provide(newBackend),
	fx.Provide(
		func(b Backend) repository.PersonRepository { return b },
		func(b Backend) repository.HealthChecker { return b },
	),
	fx.Invoke(registerLifecycle),
)

type backendParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

var newPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
	s, err := postgres.New(ctx, dsn, logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newBackend(p backendParams) (Backend, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Warn("database uri is not set, persons are kept in memory")
		return memory.New(), nil
	}
	p.Logger.Info("using postgres person store")
	return newPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, backend Backend) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			backend.Close()
			return nil
		},
	})
}
