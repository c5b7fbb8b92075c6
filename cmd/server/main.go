package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"veritas-core/internal/adapter/api"
	"veritas-core/internal/adapter/store"
	"veritas-core/internal/config"
	"veritas-core/internal/domain/repository"
	"veritas-core/internal/logging"
	"veritas-core/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "veritas: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env.dev", ".env")
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, nil)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer log.Sync()

	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis for daily usage; the service still runs without it
	var limiter repository.UsageLimiter = store.NewMemoryLimiter()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("redis unavailable, counting usage in memory", "addr", cfg.RedisAddr, "error", err)
			_ = rdb.Close()
		} else {
			defer rdb.Close()
			limiter = store.NewRedisLimiter(rdb)
			log.Info("redis usage limiter connected", "addr", cfg.RedisAddr)
		}
	}

	var delayer repository.Delayer = usecase.TimerDelayer{}
	if !cfg.SimulateDelays {
		delayer = usecase.NoDelay{}
	}

	sessions := store.NewMemorySessionStore(cfg.HistoryLimit)
	users := store.NewMemoryUserStore()
	tiers := store.NewMemorySubscriptionStore()

	subscriptions := usecase.NewSubscriptionService(tiers, limiter, delayer, log)
	accounts := usecase.NewAccountService(users, sessions, delayer, log)
	analyzer := usecase.NewAnalyzer(catalog, delayer, cfg.MinDelay, cfg.MaxDelay)
	orchestrator := usecase.NewOrchestrator(analyzer, sessions, limiter, subscriptions, log,
		usecase.WithAnalysisTimeout(cfg.AnalysisTimeout),
	)
	history := usecase.NewHistoryService(sessions, subscriptions, catalog)

	// Initialize API Layer (Delivery Layer)
	app := fiber.New(fiber.Config{
		AppName:               "Veritas Chat Analysis",
		DisableStartupMessage: cfg.LogFormat == "json",
	})

	handler := api.NewHandler(orchestrator, accounts, subscriptions, history, log)
	api.SetupRouter(app, handler, api.RouterConfig{
		Version:         cfg.AppVersion,
		Env:             cfg.Env,
		AnalysisLimiter: rate.NewLimiter(rate.Limit(cfg.AnalysisRPS), cfg.AnalysisBurst),
		AccessLog:       true,
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("veritas running", "port", cfg.Port, "engines", len(catalog), "simulate_delays", cfg.SimulateDelays)
	return app.Listen(":" + cfg.Port)
}
