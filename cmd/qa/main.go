package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/qa-service/pkg/config"
	"github.com/NeuralTrust/qa-service/pkg/dependency_container"
	"github.com/NeuralTrust/qa-service/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/qa-service/pkg/infra/logger"
	_ "github.com/NeuralTrust/qa-service/pkg/infra/migrations"
	"github.com/NeuralTrust/qa-service/pkg/server"
	"github.com/NeuralTrust/qa-service/pkg/version"
	"github.com/joho/godotenv"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()
	defer infraLogger.CloseOnExit(logger)()

	if err := config.Load(os.Getenv("CONFIG_PATH")); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	if cfg.Moderation.BaseURL == "" || cfg.Moderation.APIKey == "" {
		logger.Warn("moderation service is not configured, answers will be rejected until API_LAYER_URL and BAD_WORDS_API_KEY are set")
	}

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
		DB:     db,
	})
	if err != nil {
		logger.Fatalf("Failed to build dependencies: %v", err)
	}

	srv := server.NewAPIServer(server.APIServerDI{
		MiddlewareTransport: container.MiddlewareTransport,
		HandlerTransport:    container.HandlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	logger.WithField("version", version.Version).Info("starting " + version.AppName)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	if container.Cache != nil {
		_ = container.Cache.RedisClient().Close()
	}
	fmt.Println("server gracefully stopped")
}
