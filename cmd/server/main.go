package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/iliyamo/expo-management/internal/config"
	"github.com/iliyamo/expo-management/internal/handler"
	"github.com/iliyamo/expo-management/internal/logger"
	"github.com/iliyamo/expo-management/internal/metrics"
	"github.com/iliyamo/expo-management/internal/queue"
	"github.com/iliyamo/expo-management/internal/router"
	"github.com/iliyamo/expo-management/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open stores")
	}
	defer st.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []service.Option{
		service.WithMetrics(metrics.New(reg)),
		service.WithLogger(log),
	}
	if cfg.RabbitURL != "" {
		opts = append(opts, service.WithPublisher(queue.NewPublisher(cfg.RabbitURL)))
		go func() {
			if err := queue.NewAuditConsumer(cfg.RabbitURL, log).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("audit consumer stopped")
			}
		}()
	}
	svc := service.New(st.store, st.tokens, service.Config{
		StoreTimeout:  cfg.StoreTimeout,
		BcryptCost:    cfg.BcryptCost,
		ResetTokenTTL: cfg.ResetTokenTTL,
		JWTSecret:     cfg.JWTSecret,
		AccessTTL:     cfg.AccessTTL(),
		RefreshTTL:    cfg.RefreshTTL(),
	}, opts...)

	// Finish cascades interrupted by a previous crash before serving.
	if n, err := svc.ResumePendingCascades(ctx); err != nil {
		log.Error().Err(err).Int("resumed", n).Msg("cascade recovery incomplete")
	} else if n > 0 {
		log.Info().Int("resumed", n).Msg("cascade recovery done")
	}

	rdb := config.NewRedisClient()
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	e := router.New(router.Handlers{
		Health:     &handler.HealthHandler{Ping: st.ping},
		Auth:       handler.NewAuthHandler(svc, cfg.IsDev()),
		Expo:       handler.NewExpoHandler(svc),
		Exhibitor:  handler.NewExhibitorHandler(svc),
		Engagement: handler.NewEngagementHandler(svc),
		Analytics:  handler.NewAnalyticsHandler(svc),
	}, router.Options{
		JWTSecret:   cfg.JWTSecret,
		CORSOrigins: cfg.CORSOrigins,
		Cache:       config.LoadCacheConfig(),
		RateLimit:   config.LoadRateLimitConfig(),
		Redis:       rdb,
		Logger:      log,
		Gatherer:    reg,
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Str("store", cfg.StoreDriver).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdown(e.Shutdown, log)
}

func shutdown(fn func(context.Context) error, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
