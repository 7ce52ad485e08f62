package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/urbandrive/urbandrive/internal/pkg/config"
	"github.com/urbandrive/urbandrive/internal/pkg/database"
	"github.com/urbandrive/urbandrive/internal/pkg/health"
	"github.com/urbandrive/urbandrive/internal/pkg/logger"
	"github.com/urbandrive/urbandrive/internal/pkg/middleware"
	"github.com/urbandrive/urbandrive/internal/pkg/nats"
	nrpkg "github.com/urbandrive/urbandrive/internal/pkg/newrelic"
	"github.com/urbandrive/urbandrive/internal/pkg/server"
	"github.com/urbandrive/urbandrive/services/payment"
	"github.com/urbandrive/urbandrive/services/payment/gateway"
	"github.com/urbandrive/urbandrive/services/payment/handler"
	"github.com/urbandrive/urbandrive/services/payment/repository"
	"github.com/urbandrive/urbandrive/services/payment/usecase"
)

func main() {
	appName := "payment-service"
	configPath := "config/payment.env"
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

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	transactionRepo := repository.NewTransactionRepository(postgresClient.GetDB())

	// Initialize gateway
	paymentGW := gateway.NewPaymentGW(&configs.Payment, &configs.Stripe, natsClient)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(configs, transactionRepo, paymentGW)

	// Initialize handlers
	paymentHandler := handler.NewHandler(paymentUC, configs)

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
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	paymentHandler.RegisterRoutes(e, apiKeyMiddleware)

	// Sweep stale Pending transactions: a record whose callback never
	// arrived must not stay Pending forever.
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go runStaleSweep(sweepCtx, paymentUC, configs.Payment.SweepInterval)

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
}

func runStaleSweep(ctx context.Context, paymentUC payment.PaymentUC, intervalMinutes int) {
	if intervalMinutes <= 0 {
		intervalMinutes = 15
	}
	ticker := time.NewTicker(time.Duration(intervalMinutes) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := paymentUC.ExpireStalePending(ctx); err != nil {
				logger.Error("Stale pending sweep failed", logger.Err(err))
			}
		}
	}
}
