package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/personauth/internal/app"
	"github.com/polkiloo/personauth/internal/config"
	"github.com/polkiloo/personauth/internal/logger"
	"github.com/polkiloo/personauth/internal/observability"
	"github.com/polkiloo/personauth/internal/server/http/handlers"
	"github.com/polkiloo/personauth/internal/server/http/router"
	"github.com/polkiloo/personauth/internal/storage"
	"github.com/polkiloo/personauth/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		observability.Module,
		usecase.Module,
		fx.Provide(func(f *app.PersonFacade) handlers.Facade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
