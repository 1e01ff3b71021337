package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/collegeportal/internal/bootstrap"
	"github.com/yigit/collegeportal/internal/config"
	"github.com/yigit/collegeportal/internal/pkg/logger"
	"github.com/yigit/collegeportal/internal/server"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML configuration file")
	flag.Parse()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath, "portal")
	if err != nil {
		os.Exit(1)
	}
	if err := cfg.ValidatePortal(); err != nil {
		logger.Error().Err(err).Msg("Invalid portal configuration")
		os.Exit(1)
	}

	portal, err := bootstrap.SetupPortal(context.Background(), cfg, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to setup portal")
		os.Exit(1)
	}

	srv := server.New("portal", cfg.Portal.Port, portal.Router, lgr, portal.Closers...)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Portal server failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Portal finished gracefully.")
}
