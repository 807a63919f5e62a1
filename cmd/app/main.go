package main

import (
	"github.com/hexanotify/notifier-service/internal/app"
	"go.uber.org/fx"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
