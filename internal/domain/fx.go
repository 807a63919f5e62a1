package domain

import (
	"github.com/hexanotify/notifier-service/internal/domain/account"
	"github.com/hexanotify/notifier-service/internal/domain/cascade"
	"github.com/hexanotify/notifier-service/internal/domain/channel"
	"github.com/hexanotify/notifier-service/internal/domain/directmessage"
	"github.com/hexanotify/notifier-service/internal/domain/notification"
	"go.uber.org/fx"
)

var Module = fx.Module(
	"domain",
	account.Module,
	cascade.Module,
	channel.Module,
	directmessage.Module,
	notification.Module,
)
