package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/personauth/internal/config"
	"github.com/polkiloo/personauth/internal/observability"
	"github.com/polkiloo/personauth/internal/server/http/handlers"
	"github.com/polkiloo/personauth/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.Facade, logger *slog.Logger, metrics *observability.Metrics, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	if cfg.MetricsEnabled {
		engine.Use(middleware.RequestMetrics(metrics))
	}
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	personHandler := handlers.NewPersonHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	person := engine.Group("/api/v1/person")
	for _, path := range []string{"", "/"} {
		person.GET(path, personHandler.List)
		person.POST(path, personHandler.Create)
		person.PUT(path, personHandler.Update)
	}
	person.GET("/:id", personHandler.Get)
	person.DELETE("/:id", personHandler.Delete)

	health := engine.Group("/healthz")
	health.GET("/liveness", healthHandler.Liveness)
	health.GET("/readiness", healthHandler.Readiness)

	if cfg.MetricsEnabled {
		engine.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	return engine
}
