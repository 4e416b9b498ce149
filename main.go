package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/hrdash/config"
	"github.com/hrdash/database"
	"github.com/hrdash/logger"
	"github.com/hrdash/reports"
	"github.com/hrdash/web"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed database with sample data")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogFile)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatal().Err(err).Msg("database connection check failed")
	}

	// Run migration if requested
	if *migrate {
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		log.Info().Msg("migration completed")
	}

	// Seed database if requested
	if *seed {
		if err := database.SeedData(database.DB); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	// Create and start web server
	repo := reports.NewRepository(database.GetDB())
	server := web.NewServer(repo)

	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

func showHelp() {
	fmt.Print(`
Employee Management Dashboard

Usage:
  go run main.go [options]

Options:
  -migrate  Run GORM AutoMigrate on startup
  -seed     Seed database with sample data
  -help     Show this help message

Examples:
  # Start server only
  go run main.go

  # First run: create tables and load the sample dataset
  go run main.go -migrate -seed

For full migration control, use:
  go run cmd/migrate/main.go

For full seed control, use:
  go run cmd/seed/main.go
` + "\n")
}
