package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/drishti/internal/api"
	"github.com/shenikar/drishti/internal/client"
	"github.com/shenikar/drishti/internal/config"
	"github.com/shenikar/drishti/internal/dispatch"
	"github.com/shenikar/drishti/internal/events"
	v1 "github.com/shenikar/drishti/internal/handler/http/v1"
	"github.com/shenikar/drishti/internal/media"
	"github.com/shenikar/drishti/internal/repository"
	"github.com/shenikar/drishti/internal/service"
	"github.com/shenikar/drishti/internal/session"
	"github.com/shenikar/drishti/internal/syncer"
	"github.com/shenikar/drishti/internal/webhook"
	"github.com/shenikar/drishti/pkg/logger"
	"github.com/shenikar/drishti/pkg/metrics"
	"github.com/shenikar/drishti/pkg/postgres"
	redisclient "github.com/shenikar/drishti/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/drishti/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Drishti Incident Command API
// @version 1.0
// @description Operator console backend: incidents, responders, zones, dispatch, alerts, AI and media.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	m, err := migrate.New(
		"file://migrations",
		postgres.MigrationURL(cfg.DatabaseURL),
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	metrics.Register()

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL (журнал саг)
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Сессия оператора хранится в Redis
	sess := session.New(session.NewRedisStore(redisClient, cfg.SessionKeyPrefix))
	sess.OnExpire(func(reason string) {
		log.WithField("reason", reason).Warn("Operator session expired, sign-in required")
	})

	// HTTP-клиенты бэкенда и агента
	apiClient := client.New(cfg.APIBaseURL, cfg.UpstreamTimeout, sess, log)
	agentClient := client.New(cfg.AgentBaseURL, cfg.UpstreamTimeout, sess, log)

	authAPI := api.NewAuth(apiClient)
	incidentsAPI := api.NewIncidents(apiClient)
	zonesAPI := api.NewZones(apiClient)
	respondersAPI := api.NewResponders(apiClient)
	contactsAPI := api.NewContacts(apiClient)
	systemAPI := api.NewSystem(apiClient)
	venuesAPI := api.NewVenues(apiClient)
	alertsAPI := api.NewAlerts(apiClient)
	uploadsAPI := api.NewUploads(apiClient)
	agentAPI := api.NewAgent(agentClient)

	// Кеши с периодическим опросом
	incidents := syncer.NewIncidents(incidentsAPI, api.IncidentFilter{}, cfg.PollIncidents, log)
	responders := syncer.NewResponders(respondersAPI, cfg.PollResponders, log)
	zones := syncer.NewZones(zonesAPI, cfg.PollZones, log)
	incidents.Start(ctx)
	responders.Start(ctx)
	zones.Start(ctx)

	// Поток доменных событий в Kafka
	eventPublisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopicEvents, log)
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			log.WithError(err).Error("Failed to close event publisher")
		}
	}()

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	sagaRepo := repository.NewSagaRepository(dbpool, redisClient)
	reporter := dispatch.NewReporter(incidents, incidentsAPI, responders, sagaRepo, eventPublisher, log)

	// Конвейер анализа кадров
	source := media.NewFrameSource(cfg.CameraSnapshotURL, cfg.UpstreamTimeout, cfg.CameraDemo)
	analyzer := media.NewAnalyzer(source, uploadsAPI, eventPublisher, cfg.UploadBucket, cfg.MediaAutoIncident, log)
	if (cfg.CameraSnapshotURL != "" || cfg.CameraDemo) && cfg.CameraZone != "" {
		go analyzer.Live(ctx, cfg.CameraZone, cfg.LiveCaptureInterval, func(res media.Result) {
			entry := log.WithFields(logrus.Fields{"zone": res.Zone, "status": res.Status})
			if res.Error != "" {
				entry.Warn("Live capture cycle failed")
				return
			}
			if res.Analysis != nil && res.Analysis.Incident != nil {
				incidents.Track(*res.Analysis.Incident)
			}
			entry.Debug("Live capture cycle complete")
		})
		log.WithField("zone", cfg.CameraZone).Info("Live camera analysis started")
	}

	// Инициализация сервисов
	authService := service.NewAuthService(authAPI, sess, log)
	incidentService := service.NewIncidentService(incidents, responders, incidentsAPI, reporter, eventPublisher, log)
	operationsService := service.NewOperationsService(zones, responders, incidents, contactsAPI, systemAPI, venuesAPI, eventPublisher, log)
	alertService := service.NewAlertService(alertsAPI, agentAPI, zones, webhookPublisher, eventPublisher, log)
	intelService := service.NewIntelService(agentAPI, analyzer, incidents, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(authService, incidentService, operationsService, alertService, intelService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	apiV1 := router.Group("/api/v1")
	handler.RegisterRoutes(apiV1)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем опрос и воркер
	cancel()
	incidents.Stop()
	responders.Stop()
	zones.Stop()
	webhookWorker.Wait()

	log.Info("Server gracefully stopped")
}
