package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/hrdash/models"
)

// AutoMigrate creates or updates the three base relations
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("running GORM AutoMigrate")

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, model := range models.AllModels() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err == nil {
			log.Info().Str("table", stmt.Schema.Table).Msg("table ready")
		}
	}
	return nil
}

// DropTables drops the base relations in reverse dependency order
func DropTables(db *gorm.DB) error {
	all := models.AllModels()
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}

// CheckConnection verifies the database connection and reports whether the
// expected tables exist
func CheckConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	for _, model := range models.AllModels() {
		if !db.Migrator().HasTable(model) {
			stmt := &gorm.Statement{DB: db}
			table := "?"
			if err := stmt.Parse(model); err == nil {
				table = stmt.Schema.Table
			}
			log.Warn().Str("table", table).Msg("table missing, run with -migrate first")
		}
	}
	return nil
}
