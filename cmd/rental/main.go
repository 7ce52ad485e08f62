package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/urbandrive/urbandrive/internal/pkg/config"
	"github.com/urbandrive/urbandrive/internal/pkg/database"
	"github.com/urbandrive/urbandrive/internal/pkg/health"
	"github.com/urbandrive/urbandrive/internal/pkg/logger"
	"github.com/urbandrive/urbandrive/internal/pkg/middleware"
	nrpkg "github.com/urbandrive/urbandrive/internal/pkg/newrelic"
	"github.com/urbandrive/urbandrive/internal/pkg/server"
	"github.com/urbandrive/urbandrive/services/rental/handler"
	"github.com/urbandrive/urbandrive/services/rental/repository"
	"github.com/urbandrive/urbandrive/services/rental/usecase"
)

func main() {
	appName := "rental-service"
	configPath := "config/rental.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize repository
	rentalRepo := repository.NewRentalRepository(postgresClient.GetDB())

	// Initialize usecase
	rentalUC := usecase.NewRentalUC(configs, rentalRepo)

	// Initialize handlers
	rentalHandler := handler.NewHandler(rentalUC, configs)

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize API key middleware
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(&configs.APIKey)

	// Initialize health service
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	rentalHandler.RegisterRoutes(e, apiKeyMiddleware)

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
}
