package http

import (
	"context"

	"github.com/hexanotify/notifier-service/config"
	httpDelivery "github.com/hexanotify/notifier-service/internal/delivery/http"
	accountdeps "github.com/hexanotify/notifier-service/internal/domain/account/deps"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Module(
	"http",
	fx.Provide(
		NewHTTPServer,
		NewHandler,
	),
	fx.Invoke(registerHTTPServer),
)

func NewHTTPServer(httpCfg *config.HTTPConfig, svcCfg *config.ServiceConfig, logger zerolog.Logger) *Server {
	return NewServer(svcCfg.Name, httpCfg.Port, logger)
}

func NewHandler(registry accountdeps.Registry, svcCfg *config.ServiceConfig, logger zerolog.Logger) *httpDelivery.Handler {
	return httpDelivery.NewHandler(registry, svcCfg.Name, logger)
}

func registerHTTPServer(
	lc fx.Lifecycle,
	server *Server,
	handler *httpDelivery.Handler,
	log zerolog.Logger,
) {
	server.Router.GET("/health", handler.Health)
	server.Router.GET("/subscribers", handler.Subscribers)
	server.RegisterMetrics()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return server.Start()
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
