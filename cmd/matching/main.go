package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kurashiworks/kurashi/internal/pkg/config"
	"github.com/kurashiworks/kurashi/internal/pkg/database"
	"github.com/kurashiworks/kurashi/internal/pkg/health"
	"github.com/kurashiworks/kurashi/internal/pkg/logger"
	"github.com/kurashiworks/kurashi/internal/pkg/middleware"
	"github.com/kurashiworks/kurashi/internal/pkg/nats"
	"github.com/kurashiworks/kurashi/internal/pkg/nsq"
	"github.com/kurashiworks/kurashi/internal/pkg/server"
	"github.com/kurashiworks/kurashi/services/matching/gateway"
	"github.com/kurashiworks/kurashi/services/matching/handler"
	httpHandler "github.com/kurashiworks/kurashi/services/matching/handler/http"
	"github.com/kurashiworks/kurashi/services/matching/repository"
	"github.com/kurashiworks/kurashi/services/matching/usecase"
)

func main() {
	appName := "matching-service"
	configPath := "./config"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize NSQ producer for email jobs
	nsqProducer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	// Initialize repositories
	professionalRepo := repository.NewProfessionalRepo(configs, postgresClient.GetDB())
	orderRepo := repository.NewOrderRepo(configs, postgresClient.GetDB())
	offerRepo := repository.NewOfferRepo(redisClient)

	// Initialize gateways
	geocoderGW := gateway.NewGeocoderGW(configs, redisClient, zapLogger)
	notifierGW := gateway.NewNotifierGW(nsqProducer, natsClient)

	// Initialize usecase
	matchingUC := usecase.NewMatchingUC(configs, professionalRepo, orderRepo, offerRepo, geocoderGW, notifierGW)

	// Initialize handlers
	orderHandler := httpHandler.NewOrderHandler(matchingUC)
	matchingHandler := httpHandler.NewMatchingHandler(matchingUC)
	h := handler.NewHandler(orderHandler, matchingHandler, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Register component shutdown, executed after the HTTP server drains
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		matchingUC.ShutdownSessions()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		nsqProducer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Start server and block until shutdown
	zapLogger.Info("Starting service",
		logger.String("service", appName),
		logger.Int("port", configs.Server.Port))

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown finished with errors", logger.Err(err))
	}
}
