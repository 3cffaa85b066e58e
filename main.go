// main.go
package main

import (
	"context"
	"log"

	"elaundry/cmd"
	"elaundry/internal/clients/geocode"
	"elaundry/internal/clients/identity"
	"elaundry/internal/clients/qr"
	"elaundry/internal/clients/treedb"
	"elaundry/internal/data/repository"
	"elaundry/internal/wire"
	"elaundry/pkg/database"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to the session database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	// External clients
	tree := treedb.New(config.TreeDB)
	geocoder := geocode.New(config.Geocode)
	qrBuilder := qr.New(config.QR)

	idp := buildIdentityProvider(config, db, logger)
	logger.Info("Identity provider selected", zap.String("provider", config.Identity.Provider))

	// Initialize all repositories
	repos := repository.NewRepository(db, tree, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, idp, geocoder, qrBuilder, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func buildIdentityProvider(config *utils.Config, db database.PgxIface, logger *zap.Logger) identity.Provider {
	if config.Identity.Provider == "firebase" {
		return identity.NewFirebaseClient(config.Identity)
	}
	return identity.NewLocalProvider(db, logger)
}
