package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-DeskBooking/internal/app"
	"github.com/m04kA/SMC-DeskBooking/internal/config"
	"github.com/m04kA/SMC-DeskBooking/internal/seed"
	"github.com/m04kA/SMC-DeskBooking/pkg/logger"
	"github.com/m04kA/SMC-DeskBooking/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath := config.Path()
	cfg, err := config.Load(configPath)
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

	log.Info("Starting %s...", cfg.App.Name)
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем начальные данные
	var fixtures *seed.Fixtures
	if cfg.App.SeedFile != "" {
		fixtures, err = seed.LoadFile(cfg.App.SeedFile)
	} else {
		fixtures, err = seed.Default()
	}
	if err != nil {
		log.Fatal("Failed to load seed data: %v", err)
	}

	application, err := app.New(context.Background(), cfg, fixtures, time.Now().In(cfg.Location()), metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to build application: %v", err)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      application.Handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (timezone=%s, default user=%s)", addr, cfg.App.Timezone, cfg.App.CurrentUserID)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
