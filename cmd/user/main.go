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
	nsqpkg "github.com/urbandrive/urbandrive/internal/pkg/nsq"
	"github.com/urbandrive/urbandrive/internal/pkg/server"
	"github.com/urbandrive/urbandrive/services/user/gateway"
	"github.com/urbandrive/urbandrive/services/user/handler"
	"github.com/urbandrive/urbandrive/services/user/repository"
	"github.com/urbandrive/urbandrive/services/user/usecase"
	"github.com/urbandrive/urbandrive/services/user/worker"
)

func main() {
	appName := "user-service"
	configPath := "config/user.env"
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

	// Initialize Redis connection (verification-code store)
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer (email job queue)
	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Initialize repositories
	userRepo := repository.NewUserRepository(postgresClient.GetDB())
	codeRepo := repository.NewCodeRepository(redisClient)

	// Initialize gateway
	userGW := gateway.NewUserGW(nsqProducer, configs.NSQ.EmailTopic)

	// Initialize usecase
	userUC := usecase.NewUserUC(configs, userRepo, codeRepo, userGW)

	// Initialize handlers
	userHandler := handler.NewHandler(userUC, configs)

	// Start the email worker consuming the job queue
	emailWorker, err := worker.NewEmailWorker(&configs.NSQ, worker.NewSMTPSender(&configs.SMTP))
	if err != nil {
		zapLogger.Fatal("Failed to start email worker", logger.Err(err))
	}
	defer emailWorker.Stop()

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
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	userHandler.RegisterRoutes(e, apiKeyMiddleware)

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
}
