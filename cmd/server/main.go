package main

import (
	"fmt"

	"github.com/amirasaad/bankledger/infra/initializer"
	"github.com/amirasaad/bankledger/pkg/config"
	"github.com/amirasaad/bankledger/webapi"
	"github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps := initializer.New(cfg)
	app := webapi.New(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server", "env", cfg.Env, "address", addr)

	return app.Listen(addr)
}
