package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addClientHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/add_client"
	clearHistoryHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/clear_history"
	exportHistoryHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/export_history"
	finalizeCurrentHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/finalize_current"
	getHistoryHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/get_history"
	getSettingsHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/get_settings"
	getSnapshotHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/get_snapshot"
	removeQueueItemHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/remove_queue_item"
	restoreSettingsHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/restore_settings"
	startNextHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/start_next"
	updateSettingsHandler "github.com/m04kA/SMC-TurnsService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-TurnsService/internal/api/middleware"
	"github.com/m04kA/SMC-TurnsService/internal/config"
	"github.com/m04kA/SMC-TurnsService/internal/infra/feedback"
	historyRepo "github.com/m04kA/SMC-TurnsService/internal/infra/storage/history"
	settingsRepo "github.com/m04kA/SMC-TurnsService/internal/infra/storage/settings"
	historyService "github.com/m04kA/SMC-TurnsService/internal/service/history"
	schedulerService "github.com/m04kA/SMC-TurnsService/internal/service/scheduler"
	settingsService "github.com/m04kA/SMC-TurnsService/internal/service/settings"
	addClientUC "github.com/m04kA/SMC-TurnsService/internal/usecase/add_client"
	finalizeCurrentUC "github.com/m04kA/SMC-TurnsService/internal/usecase/finalize_current"
	getSnapshotUC "github.com/m04kA/SMC-TurnsService/internal/usecase/get_snapshot"
	"github.com/m04kA/SMC-TurnsService/pkg/logger"
	"github.com/m04kA/SMC-TurnsService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TurnsService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем файловые репозитории
	settingsRepository := settingsRepo.NewRepository(cfg.Storage.SettingsFile)
	historyRepository := historyRepo.NewRepository(cfg.Storage.HistoryFile)
	log.Info("Storage initialized (settings=%s, history=%s)",
		cfg.Storage.SettingsFile, cfg.Storage.HistoryFile)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, log)
	historySvc := historyService.NewService(historyRepository, log)

	notifier := feedback.New(log, metricsCollector)
	schedulerSvc := schedulerService.NewService(
		time.Duration(cfg.Engine.TickIntervalMs)*time.Millisecond,
		notifier,
		log,
	)

	// Фоновый пересчет очереди: раз в минуту времена старта подтягиваются
	// к текущему моменту, даже если оператор ничего не трогает
	stopReflow := make(chan struct{})
	go schedulerSvc.RunReflowLoop(stopReflow,
		time.Duration(cfg.Engine.ReflowIntervalSeconds)*time.Second)

	// Инициализируем use cases
	addClientUseCase := addClientUC.NewUseCase(schedulerSvc, settingsSvc, log)
	finalizeCurrentUseCase := finalizeCurrentUC.NewUseCase(schedulerSvc, historySvc, log)
	getSnapshotUseCase := getSnapshotUC.NewUseCase(schedulerSvc, log)

	// Инициализируем handlers
	addClient := addClientHandler.NewHandler(addClientUseCase, log)
	startNext := startNextHandler.NewHandler(schedulerSvc, log)
	finalizeCurrent := finalizeCurrentHandler.NewHandler(finalizeCurrentUseCase, log)
	removeQueueItem := removeQueueItemHandler.NewHandler(schedulerSvc, log)
	getSnapshot := getSnapshotHandler.NewHandler(getSnapshotUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	restoreSettings := restoreSettingsHandler.NewHandler(settingsSvc, log)
	getHistory := getHistoryHandler.NewHandler(historySvc, log)
	clearHistory := clearHistoryHandler.NewHandler(historySvc, log)
	exportHistory := exportHistoryHandler.NewHandler(historySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Клиенты и очередь ---
	api.HandleFunc("/clients", addClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/queue/{itemId}", removeQueueItem.Handle).Methods(http.MethodDelete)

	// --- Таймер ---
	api.HandleFunc("/timer/start-next", startNext.Handle).Methods(http.MethodPost)
	api.HandleFunc("/timer/finalize", finalizeCurrent.Handle).Methods(http.MethodPost)

	// --- Снимок состояния ---
	api.HandleFunc("/snapshot", getSnapshot.Handle).Methods(http.MethodGet)

	// --- Настройки длительностей ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	api.HandleFunc("/settings/restore", restoreSettings.Handle).Methods(http.MethodPost)

	// --- Журнал ---
	api.HandleFunc("/history", getHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/history", clearHistory.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/history/export", exportHistory.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopReflow)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
