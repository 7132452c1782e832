package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/smrc/smrc-cli/internal/buildinfo"
	"github.com/smrc/smrc-cli/internal/client/cli"
	"github.com/smrc/smrc-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
