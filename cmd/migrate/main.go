package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hrdash/config"
	"github.com/hrdash/database"
	"github.com/hrdash/logger"
)

func main() {
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migration")
		help = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}
	logger.Init(cfg.App.Environment, cfg.App.LogFile)

	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer database.Close()

	if *drop {
		log.Warn().Msg("dropping all tables")
		if err := database.DropTables(database.DB); err != nil {
			log.Fatal().Err(err).Msg("failed to drop tables")
		}
	}

	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("migration completed successfully")
}

func showHelp() {
	fmt.Print(`
Database Migration Tool for the Employee Management Dashboard

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop     Drop all tables before migration (WARNING: Data loss!)
  -help     Show this help message

Environment:
  Reads .env or environment variables:
  - DB_DRIVER (sqlite or postgres, default sqlite)
  - DB_PATH (sqlite file, default employee_database.db)
  - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE (postgres)
` + "\n")
}
