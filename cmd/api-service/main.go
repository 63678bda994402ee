package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jowa-zm/jowa-backend/internal/api/handler"
	"github.com/jowa-zm/jowa-backend/internal/api/router"
	"github.com/jowa-zm/jowa-backend/internal/api/storage"
	"github.com/jowa-zm/jowa-backend/internal/config"
	"github.com/jowa-zm/jowa-backend/shared/logger"
	"github.com/jowa-zm/jowa-backend/shared/postgresql"
	"github.com/jowa-zm/jowa-backend/shared/rabbitmq"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or flags")
	}

	// Parse command-line flags
	defaultConfigPath := os.Getenv("JOWA_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Initialize logger
	appLogger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger.Info("Starting JOWA backend",
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("environment", cfg.App.Environment),
	)

	// Connection gateway; the database itself may be unreachable at
	// startup, handlers probe it per request
	gateway := initGateway(&cfg.Database, appLogger.Logger)

	// Optional job-event publisher
	var events handler.EventPublisher
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = initPublisher(&cfg.RabbitMQ, appLogger.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ: %w", err)
		}
		events = publisher
	}

	// Initialize router
	r := initRouter(cfg, appLogger.Logger, gateway, events)

	// Create HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed to start",
				slog.Any("error", err),
			)
			os.Exit(1)
		}
	}()

	appLogger.Info("JOWA backend is running",
		slog.String("address", addr),
		slog.Bool("debug", cfg.Server.Debug),
	)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)

	cleanup := func() {
		cancel()
		if publisher != nil {
			publisher.Close()
		}
	}
	defer cleanup()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown",
			slog.Any("error", err),
		)
		return err
	}

	appLogger.Info("Server shutdown complete")
	return nil
}

// initLogger initializes and configures the application logger. Debug
// mode forces the debug level regardless of the configured one.
func initLogger(cfg *config.Config) (*logger.Logger, error) {
	level := cfg.Logging.Level
	if cfg.Server.Debug {
		level = "debug"
	}

	return logger.New(&logger.Config{
		Level:        level,
		Format:       cfg.Logging.Format,
		Output:       cfg.Logging.Output,
		EnableSource: cfg.Logging.EnableCaller,
		TimeFormat:   time.RFC3339,
	})
}

// initGateway initializes the PostgreSQL connection gateway
func initGateway(cfg *config.DatabaseConfig, logger *slog.Logger) *postgresql.Gateway {
	return postgresql.NewGateway(&postgresql.Config{
		URL:         cfg.URL,
		Host:        cfg.Host,
		Port:        cfg.Port,
		User:        cfg.User,
		Password:    cfg.Password,
		Database:    cfg.Database,
		SSLMode:     cfg.SSLMode,
		PingTimeout: cfg.PingTimeout,
	}, logger)
}

// initPublisher initializes the RabbitMQ job-event publisher
func initPublisher(cfg *config.RabbitMQConfig, logger *slog.Logger) (*rabbitmq.Publisher, error) {
	return rabbitmq.NewPublisher(&rabbitmq.Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		User:            cfg.User,
		Password:        cfg.Password,
		VHost:           cfg.VHost,
		ExchangeName:    cfg.Exchange,
		ExchangeType:    cfg.ExchangeType,
		ExchangeDurable: true,
		QueueName:       cfg.Queue,
		QueueDurable:    true,
		RoutingKey:      cfg.RoutingKey,
		RetryAttempts:   cfg.RetryAttempts,
		RetryInterval:   cfg.RetryInterval,
		Heartbeat:       cfg.Heartbeat,
	}, logger)
}

// initRouter initializes the Gin router with all routes and middleware
func initRouter(cfg *config.Config, logger *slog.Logger, gateway *postgresql.Gateway, events handler.EventPublisher) *gin.Engine {
	if cfg.Server.Debug || cfg.App.Environment != "production" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := &handler.Dependencies{
		Logger: logger,
		Store:  storage.NewStorage(gateway),
		Events: events,
	}

	return router.SetupRouter(deps)
}
