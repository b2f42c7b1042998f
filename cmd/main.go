package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/blood_donation_system/internal/config"
	v1 "github.com/shenikar/blood_donation_system/internal/handler/http/v1"
	"github.com/shenikar/blood_donation_system/internal/repository"
	"github.com/shenikar/blood_donation_system/internal/service"
	"github.com/shenikar/blood_donation_system/internal/webhook"
	"github.com/shenikar/blood_donation_system/pkg/logger"
	"github.com/shenikar/blood_donation_system/pkg/mongodb"
	redisclient "github.com/shenikar/blood_donation_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/blood_donation_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Blood Donation System API
// @version 1.0
// @description Donor registration, nearby donor search and blood requests.
// @host localhost:4500
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL, err := mongoMigrationURL(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return fmt.Errorf("could not build migration URL: %w", err)
	}

	m, err := migrate.New(cfg.MigrationsPath, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// mongoMigrationURL подставляет имя базы в путь URI, драйвер migrate берет базу оттуда
func mongoMigrationURL(uri, database string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	u.Path = "/" + database
	return u.String(), nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций (2dsphere и уникальные индексы)
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к MongoDB
	mongoClient, err := mongodb.NewMongoClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()
	log.Info("Successfully connected to MongoDB")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	donorRepo := repository.NewDonorRepository(mongoClient.Database(cfg.MongoDatabase))

	// Инициализация сервисов
	donorService := service.NewDonorService(donorRepo, log, cfg)
	requestService := service.NewRequestService(donorRepo, log, cfg, webhookPublisher)

	// Инициализация хэндлеров
	handler := v1.NewHandler(donorService, requestService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
