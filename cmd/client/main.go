package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/tfernandez-dev/menumap/internal/client/cli"
	"github.com/tfernandez-dev/menumap/internal/client/config"
	"github.com/tfernandez-dev/menumap/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "err", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
