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

// @title College Management System API
// @version 1.0
// @description REST backend of the college administration portal.

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by a login endpoint.

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML configuration file")
	flag.Parse()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath, "api")
	if err != nil {
		os.Exit(1)
	}
	if err := cfg.ValidateAPI(); err != nil {
		logger.Error().Err(err).Msg("Invalid API configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(context.Background(), cfg, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}

	deps := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	router := bootstrap.SetupRouter(cfg, deps, lgr)

	srv := server.New("api", cfg.Server.Port, router, lgr, dbPool.Close)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
