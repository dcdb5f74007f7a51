package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/warebridge/warebridge/cmd/warebridge/cli"
	"github.com/warebridge/warebridge/internal/app"
	"github.com/warebridge/warebridge/internal/auth"
	"github.com/warebridge/warebridge/internal/customers"
	"github.com/warebridge/warebridge/internal/exportslips"
	"github.com/warebridge/warebridge/internal/masterdata"
	"github.com/warebridge/warebridge/internal/notifications"
	"github.com/warebridge/warebridge/internal/orders"
	"github.com/warebridge/warebridge/internal/ordertags"
	"github.com/warebridge/warebridge/internal/payments"
	"github.com/warebridge/warebridge/internal/platform/cache"
	"github.com/warebridge/warebridge/internal/quotations"
	"github.com/warebridge/warebridge/internal/stocklevels"
	"github.com/warebridge/warebridge/internal/upstream"
	"github.com/warebridge/warebridge/internal/users"
	"github.com/warebridge/warebridge/jobs"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "jobs" {
		runJobsCommand(os.Args[2:])
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var redisClient *redis.Client
	var tokens upstream.TokenStore = upstream.NewMemoryTokenStore()
	if cfg.RedisAddr != "" {
		client, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, tokens held in memory", slog.Any("error", err))
		} else {
			redisClient = client
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
			tokens = upstream.NewRedisTokenStore(redisClient)
		}
	}

	api := upstream.NewClient(cfg.UpstreamBaseURL, tokens,
		upstream.WithLogger(logger),
		upstream.WithTimeout(cfg.UpstreamTimeout),
	)

	stockCache := stocklevels.NewCache(redisClient, cfg.StockCacheTTL)

	authClient := auth.NewClient(api, tokens)
	customersClient := customers.NewClient(api)
	ordersClient := orders.NewClient(api)
	slipsClient := exportslips.NewClient(api)
	paymentsClient := payments.NewClient(api)
	quotationsClient := quotations.NewClient(api)
	stockClient := stocklevels.NewClient(api)
	notificationsClient := notifications.NewClient(api, logger)
	usersClient := users.NewClient(api)
	masterClient := masterdata.NewClient(api)
	tagService := ordertags.NewService(ordersClient)

	var jobsHandler *jobs.Handler
	if cfg.RedisAddr != "" {
		inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		jobsHandler = jobs.NewHandler(inspector, logger)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:               logger,
		Config:               cfg,
		AuthHandler:          auth.NewHandler(logger, authClient),
		CustomersHandler:     customers.NewHandler(logger, customersClient),
		OrdersHandler:        orders.NewHandler(logger, ordersClient),
		ExportSlipsHandler:   exportslips.NewHandler(logger, slipsClient),
		PaymentsHandler:      payments.NewHandler(logger, paymentsClient),
		QuotationsHandler:    quotations.NewHandler(logger, quotationsClient),
		StockLevelsHandler:   stocklevels.NewHandler(logger, stockClient, stockCache),
		NotificationsHandler: notifications.NewHandler(logger, notificationsClient),
		UsersHandler:         users.NewHandler(logger, usersClient),
		MasterDataHandler:    masterdata.NewHandler(logger, masterClient),
		OrderTagsHandler:     ordertags.NewHandler(logger, tagService),
		JobsHandler:          jobsHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

// runJobsCommand dispatches `warebridge jobs <warmup [warehouse-id]|queue>`
// operational helpers against the shared job queue.
func runJobsCommand(args []string) {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)
	if cfg.RedisAddr == "" {
		logger.Error("jobs command requires REDIS_ADDR")
		os.Exit(1)
	}

	ops, err := cli.NewJobsCLI(cfg.RedisAddr)
	if err != nil {
		logger.Error("init jobs cli", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := ops.Close(); err != nil {
			logger.Warn("jobs cli close", slog.Any("error", err))
		}
	}()

	ctx := context.Background()
	switch {
	case len(args) > 0 && args[0] == "warmup":
		warehouseID := ""
		if len(args) > 1 {
			warehouseID = args[1]
		}
		info, err := ops.TriggerWarmup(ctx, warehouseID)
		if err != nil {
			logger.Error("enqueue warmup", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("warmup enqueued", slog.String("task_id", info.ID), slog.String("queue", info.Queue))
	case len(args) > 0 && args[0] == "queue":
		stats, err := ops.InspectQueue(ctx)
		if err != nil {
			logger.Error("inspect queue", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("queue state",
			slog.String("queue", stats.Queue),
			slog.Int("pending", stats.Pending),
			slog.Int("active", stats.Active),
			slog.Int("scheduled", stats.Scheduled),
			slog.Int("retry", stats.Retry),
		)
	default:
		fmt.Fprintln(os.Stderr, "usage: warebridge jobs <warmup [warehouse-id]|queue>")
		os.Exit(2)
	}
}
