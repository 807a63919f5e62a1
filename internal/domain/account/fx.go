package account

import (
	"github.com/hexanotify/notifier-service/internal/domain/account/deps"
	"github.com/hexanotify/notifier-service/internal/domain/account/repository/postgres"
	"github.com/hexanotify/notifier-service/internal/domain/account/usecase"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module(
	"account",
	fx.Provide(
		NewRepository,
		usecase.NewRegistry,
		NewRegistry,
	),
)

func NewRepository(db *gorm.DB) deps.UserRepository {
	return postgres.NewRepository(db)
}

func NewRegistry(registry *usecase.Registry) deps.Registry {
	return registry
}
