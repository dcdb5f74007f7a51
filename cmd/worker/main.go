package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/warebridge/warebridge/internal/app"
	"github.com/warebridge/warebridge/internal/masterdata"
	"github.com/warebridge/warebridge/internal/platform/cache"
	"github.com/warebridge/warebridge/internal/stocklevels"
	"github.com/warebridge/warebridge/internal/upstream"
	"github.com/warebridge/warebridge/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if cfg.RedisAddr == "" {
		logger.Error("worker requires REDIS_ADDR")
		os.Exit(1)
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	tokens := upstream.NewRedisTokenStore(redisClient)
	api := upstream.NewClient(cfg.UpstreamBaseURL, tokens,
		upstream.WithLogger(logger),
		upstream.WithTimeout(cfg.UpstreamTimeout),
	)

	masterClient := masterdata.NewClient(api)
	stockClient := stocklevels.NewClient(api)
	stockCache := stocklevels.NewCache(redisClient, cfg.StockCacheTTL)

	warmupJob := jobs.NewStockWarmupJob(masterClient, stockClient, stockCache, logger)

	warmupTask, err := jobs.NewStockWarmupTask(jobs.StockWarmupPayload{})
	if err != nil {
		logger.Error("build warmup task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskStockWarmup, Handler: warmupJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "@every " + cfg.StockWarmupInterval.String(), Task: warmupTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
