package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/menta/internal/buildinfo"
	"github.com/dmitrijs2005/menta/internal/client/cli"
	"github.com/dmitrijs2005/menta/internal/client/config"
	"github.com/dmitrijs2005/menta/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger, err := logging.New(logging.Format(cfg.LogFormat), os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
