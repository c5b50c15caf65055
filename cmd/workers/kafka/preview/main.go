package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/messenger-service/internal/bridge"
	"github.com/s21platform/messenger-service/internal/cache"
	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/databus/preview"
	"github.com/s21platform/messenger-service/internal/pkg/linkpreview"
	"github.com/s21platform/messenger-service/internal/repository/postgres"
)

const fetchTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

	cacheClient, err := cache.New(cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect valkey: %v", err))
		return
	}
	defer cacheClient.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	bus, err := bridge.New(cfg, uuid.New().String())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect event bridge: %v", err))
		return
	}
	defer bus.Close()

	fetcher := linkpreview.NewFetcher(fetchTimeout)
	handler := preview.NewHandler(dbRepo, cacheClient, fetcher, bus)

	consumer := preview.NewConsumer(cfg, handler)
	defer consumer.Close() //nolint:errcheck // .

	ctx := context.WithValue(context.Background(), config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	if err := consumer.Run(ctx); err != nil {
		logger.Error(fmt.Sprintf("consumer stopped: %v", err))
	}
}
