package app

import (
	"github.com/hexanotify/notifier-service/config"
	"github.com/hexanotify/notifier-service/internal/domain"
	"github.com/hexanotify/notifier-service/internal/infrastructure/database"
	"github.com/hexanotify/notifier-service/internal/infrastructure/http"
	"github.com/hexanotify/notifier-service/internal/infrastructure/kafka"
	"github.com/hexanotify/notifier-service/internal/infrastructure/logger"
	"github.com/hexanotify/notifier-service/internal/infrastructure/metrics"
	"go.uber.org/fx"
)

func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),

		logger.Module,
		metrics.Module,
		database.Module,
		kafka.Module,

		domain.Module,

		http.Module,
	)
}
