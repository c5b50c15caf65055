package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/messenger-service/internal/auth"
	"github.com/s21platform/messenger-service/internal/bridge"
	"github.com/s21platform/messenger-service/internal/cache"
	"github.com/s21platform/messenger-service/internal/client/storage"
	"github.com/s21platform/messenger-service/internal/client/stream"
	"github.com/s21platform/messenger-service/internal/client/user"
	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/databus/preview"
	"github.com/s21platform/messenger-service/internal/gateway"
	"github.com/s21platform/messenger-service/internal/infra"
	"github.com/s21platform/messenger-service/internal/pkg/jwt"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
	db "github.com/s21platform/messenger-service/internal/repository/postgres"
	"github.com/s21platform/messenger-service/internal/rest"
	"github.com/s21platform/messenger-service/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
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

	tokenParser, err := jwt.New(cfg.JWT.AccessPublicKey, cfg.JWT.RefreshPublicKey)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load verification keys: %v", err))
		return
	}

	verifier := auth.New(dbRepo, cacheClient, tokenParser, cfg.JWT.VerifyTimeout)

	userClient := user.New(cfg)
	defer userClient.Close()

	streamClient := stream.New(cfg)
	defer streamClient.Close()

	storageClient := storage.New(cfg)
	defer storageClient.Close()

	producer := preview.NewProducer(cfg)
	defer producer.Close() //nolint:errcheck // .

	origin := uuid.New().String()
	bus, err := bridge.New(cfg, origin)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect event bridge: %v", err))
		return
	}
	defer bus.Close()

	chatService := service.New(dbRepo, userClient, producer)
	hub := gateway.NewHub()
	gw := gateway.New(hub, chatService, verifier, userClient, streamClient, bus, dbRepo, cfg.Service.Role)

	handler := rest.New(chatService, userClient, streamClient, storageClient, hub, bus)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), config.KeyMetrics, metrics)))
		})
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	router.Get("/ws/chat", gw.ServeWS)
	router.Route("/api/chat", func(r chi.Router) {
		r.Use(infra.AuthHTTP(verifier))
		handler.AttachRoutes(r)
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		listenCtx := context.WithValue(ctx, config.KeyLogger, logger)
		if err := bus.Listen(listenCtx, gw.HandleBusEvent); err != nil {
			return fmt.Errorf("event bridge error: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("service stopped: %v", err))
	}
}
