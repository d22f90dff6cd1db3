package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/stockrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	migrateDB(gormDB)

	publisher, closePublisher := createPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(
		app.CreateGetAllStockQueryHandler(),
		app.CreateLogisticsReportQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&stockrepo.StockItemDTO{},
		&driverrepo.DriverDTO{},
		&userrepo.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

// createPublisher wires the Kafka order event publisher, or a no-op stand-in
// when KAFKA_HOST is unset.
func createPublisher(configs cmd.Config, logger *slog.Logger) (ports.OrderEventPublisher, func()) {
	if configs.KafkaHost == "" {
		return kafka.NewNoopOrderEventPublisher(), func() {}
	}
	brokers := strings.Split(configs.KafkaHost, ",")
	publisher := kafka.NewOrderEventPublisher(brokers, configs.KafkaOrderEventTopic, logger)
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("closing kafka publisher", "error", err)
		}
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(app.CreateServerHandlers())
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
