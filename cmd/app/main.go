package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpin "github.com/ligovsky/booking-slots-service/internal/adapters/in/http"
	"github.com/ligovsky/booking-slots-service/internal/adapters/out/logger"
	"github.com/ligovsky/booking-slots-service/internal/adapters/out/postgres"
	"github.com/ligovsky/booking-slots-service/internal/config"
	"github.com/ligovsky/booking-slots-service/internal/core/ports/out"
	"github.com/ligovsky/booking-slots-service/internal/core/services/slot_query_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера
	mainLogger, err := logger.NewZapLogger(string(cfg.App.Env))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":     cfg.App.Version,
		"env":         cfg.App.Env,
		"authEnabled": cfg.AuthEnabled(),
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Пул соединений к базе booking-подсистемы, только чтение
	pool, err := pgxpool.New(context.Background(), cfg.Postgres.URL)
	if err != nil {
		log.Error("app.postgres.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer pool.Close()

	// Инициализация адаптеров
	storageAdapter := postgres.NewStorageAdapter(pool, mainLogger.WithModule("StorageAdapter"))

	// Инициализация сервиса
	slotQueryService := slot_query_service.NewSlotQueryService(
		storageAdapter,
		storageAdapter,
		mainLogger,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := httpin.NewSlotQueryController(
		slotQueryService,
		cfg,
		mainLogger.WithModule("HttpController"),
	)
	controller.RegisterRoutes(router)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	// Дополнительное логирование для разработки
	if cfg.IsLocal() {
		log.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"auth": map[string]interface{}{
					"enabled": cfg.AuthEnabled(),
					"clients": len(cfg.Auth.BasicClients),
				},
			},
		})
	}
}
