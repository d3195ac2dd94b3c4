package main

import (
	"errors"
	"flag"
	"os"

	"github.com/amrulpxl/erpcore-docs/internal/config"
	"github.com/amrulpxl/erpcore-docs/internal/database"
	"github.com/amrulpxl/erpcore-docs/internal/repository"
	"github.com/amrulpxl/erpcore-docs/internal/services"
	"github.com/amrulpxl/erpcore-docs/pkg/logger"
)

// Creates the operator account from the terminal. Refuses to run once an
// admin exists, same as the HTTP create-admin flow.
func main() {
	username := flag.String("username", "", "admin username (min 3 characters)")
	password := flag.String("password", "", "admin password (min 6 characters)")
	flag.Parse()

	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	if len(*username) < 3 {
		logger.Fatal().Msg("Username must be at least 3 characters")
	}
	if len(*password) < 6 {
		logger.Fatal().Msg("Password must be at least 6 characters")
	}

	db, err := database.Connect(config.AppConfig.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	auth := services.NewAuthService(repository.NewAdminRepository(db), "", "")
	user, err := auth.CreateAdmin(*username, *password)
	if err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			logger.Fatal().Msg("Admin user already exists")
		}
		logger.Fatal().Err(err).Msg("Failed to create admin user")
	}

	logger.Info().Uint("id", user.ID).Str("username", user.Username).Msg("Admin user created")
}
