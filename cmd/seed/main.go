package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/hrdash/config"
	"github.com/hrdash/database"
	"github.com/hrdash/logger"
)

func main() {
	var (
		force = flag.Bool("force", false, "Force re-seed even if data exists")
		help  = flag.Bool("help", false, "Show help message")
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
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatal().Err(err).Msg("database connection check failed")
	}

	if *force {
		log.Warn().Msg("force flag enabled, clearing existing data")
		if err := database.ClearData(database.DB); err != nil {
			log.Fatal().Err(err).Msg("failed to clear data")
		}
	}

	if err := database.SeedData(database.DB); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	showTableStats(database.DB)
	log.Info().Msg("seeding completed successfully")
}

func showHelp() {
	fmt.Print(`
Database Seeding Tool for the Employee Management Dashboard

Usage:
  go run cmd/seed/main.go [flags]

Flags:
  -force    Force re-seed by clearing existing data
  -help     Show this help message

Examples:
  # Seed empty database
  go run cmd/seed/main.go

  # Force re-seed (clear and re-insert data)
  go run cmd/seed/main.go -force
` + "\n")
}

func showTableStats(db *gorm.DB) {
	for _, table := range []string{"department", "employee", "salary"} {
		var count int64
		db.Table(table).Count(&count)
		log.Info().Str("table", table).Int64("rows", count).Msg("table stats")
	}
}
