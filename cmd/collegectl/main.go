package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/collegeportal/internal/bootstrap"
	"github.com/yigit/collegeportal/internal/config"
	"github.com/yigit/collegeportal/internal/db"
	"github.com/yigit/collegeportal/internal/pkg/auth"
	"github.com/yigit/collegeportal/internal/pkg/logger"
	"github.com/yigit/collegeportal/internal/seed"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("collegectl failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "collegectl",
		Usage: "operate the college management database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultPath,
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"COLLEGE_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply pending SQL migrations",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "create default departments and accounts",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "demo", Usage: "also insert demo students, listings and alumni"},
				},
				Action: seedData,
			},
			{
				Name:      "hash-password",
				Usage:     "print a bcrypt hash for an account password",
				ArgsUsage: "<password>",
				Action:    hashPassword,
			},
		},
	}
}

// connect loads the configuration and opens the database for one command.
func connect(c *cli.Context) (*config.Config, *db.PostgresDB, error) {
	cfg, _, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"), "collegectl")
	if err != nil {
		return nil, nil, err
	}
	database, err := db.NewPostgresDB(c.Context, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, database, nil
}

func migrate(c *cli.Context) error {
	_, database, err := connect(c)
	if err != nil {
		return err
	}
	defer database.Close()

	return bootstrap.Migrate(c.Context, database.Pool, logger.Component("migrate"))
}

func seedData(c *cli.Context) error {
	cfg, database, err := connect(c)
	if err != nil {
		return err
	}
	defer database.Close()

	if c.Bool("demo") {
		cfg.Seed.DemoData = true
	}
	lgr := logger.Component("seed")
	if err := seed.CreateDefaultData(c.Context, database.Pool, cfg, lgr); err != nil {
		return err
	}
	lgr.Info().Bool("demo", cfg.Seed.DemoData).Msg("Seed complete")
	return nil
}

func hashPassword(c *cli.Context) error {
	password := c.Args().First()
	if password == "" {
		return errors.New("hash-password needs the password as its argument")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, hash)
	return err
}
