package main

import (
	"Commons/internal/api/config"
	"Commons/internal/pkg/cron"
	"Commons/internal/pkg/logger"
	"Commons/internal/pkg/minio"
	"Commons/internal/pkg/mongo"
	"Commons/internal/pkg/redis"
	"Commons/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Logstash)

	if err := run(cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
		os.Exit(1)
	}
	log.Info("App exited successfully.")
}

func run(cfg *config.Config) error {
	// Mongo 连接
	db, err := mongo.InitMongo(cfg.Mongo)
	if err != nil {
		return fmt.Errorf("failed to create mongo connection: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Client().Disconnect(disconnectCtx)
	}()

	// Redis 连接，仅用于查询统计
	if err = redis.InitRedis(cfg.Redis); err != nil {
		return fmt.Errorf("failed to create redis connection: %w", err)
	}
	defer func() { _ = redis.Close() }()

	// MinIO 连接
	if err = minio.Init(cfg.MinIO); err != nil {
		return fmt.Errorf("failed to initialize MinIO: %w", err)
	}

	// 依赖注入
	app, err := wire.BuildApplication(db, redis.GetRdbClient(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	if err = cron.InitCron(app.CronMgr, cfg.Cron.ProbeOnStart); err != nil {
		return fmt.Errorf("failed to start cron jobs: %w", err)
	}
	g.Go(func() error {
		<-ctx.Done()
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down...", "cause", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	return g.Wait()
}
