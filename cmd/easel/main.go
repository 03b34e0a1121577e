package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/easel-app/easel/internal/cli"
	"github.com/easel-app/easel/internal/config"
	"github.com/easel-app/easel/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
