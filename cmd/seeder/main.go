package main

import (
	"os"

	"github.com/amrulpxl/erpcore-docs/internal/config"
	"github.com/amrulpxl/erpcore-docs/internal/database"
	"github.com/amrulpxl/erpcore-docs/internal/seeds"
	"github.com/amrulpxl/erpcore-docs/pkg/logger"
)

// Seeds the database with the default admin account and starter content.
// Safe to run repeatedly; existing rows are skipped.
func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	db, err := database.Connect(config.AppConfig.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	logger.Info().Msg("Starting database seeding")

	if err := seeds.SeedAdmin(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed admin user")
	}
	if err := seeds.SeedRules(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed rules")
	}
	if err := seeds.SeedChangelog(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed changelog")
	}

	logger.Info().Msg("Database seeding completed")
}
