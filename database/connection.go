package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hrdash/config"
)

var DB *gorm.DB

// Initialize opens the shared database handle used by the application
func Initialize(cfg *config.DatabaseConfig) error {
	return InitializeWithOptions(cfg, false)
}

// InitializeWithOptions opens the shared database handle with options
func InitializeWithOptions(cfg *config.DatabaseConfig, disableQueryLog bool) error {
	db, err := Open(cfg, disableQueryLog)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Open connects to the configured database and returns the handle without
// touching the package-level DB. The command-line tools and tests use it to
// own their connection lifecycle explicitly.
func Open(cfg *config.DatabaseConfig, disableQueryLog bool) (*gorm.DB, error) {
	var gormLogger logger.Interface
	if disableQueryLog {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = NewGormLogger(logger.Info)
	}

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
		QueryFields: true,
	}

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Connection pool settings. SQLite gets a single connection: the store
	// is a local file (or in-memory database) and a wider pool only invites
	// lock contention.
	if cfg.Driver == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info().Str("driver", cfg.Driver).Msg("database connection established")
	return db, nil
}

func dialectorFor(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return sqlite.Open(cfg.Path), nil
	case "postgres":
		return postgres.Open(cfg.GetDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// GetDB returns the shared database handle
func GetDB() *gorm.DB {
	return DB
}

// Close closes the shared database handle
func Close() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
