package main

import (
	"log"
	"time"

	"marketplace-api/cmd"
	"marketplace-api/internal/data/repository"
	"marketplace-api/internal/wire"
	"marketplace-api/pkg/database"
	"marketplace-api/pkg/jwt"
	"marketplace-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App)
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

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	tokens, err := jwt.NewManager(config.JWT.Secret, config.JWT.Leeway, time.Duration(config.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		logger.Fatal("Failed to init token manager", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, tokens, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
