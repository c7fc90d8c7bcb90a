package main

import (
	"Inkpost/internal/api/config"
	"Inkpost/internal/pkg/database"
	"Inkpost/internal/pkg/kafka"
	"Inkpost/internal/pkg/logger"
	"Inkpost/internal/pkg/minio"
	"Inkpost/internal/pkg/mongo"
	"Inkpost/internal/pkg/redis"
	"Inkpost/internal/pkg/security"
	"Inkpost/internal/wire"
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
	logger.InitLogger("inkpost-api")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 数据库连接
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	// Redis 连接，保存已注销的令牌
	rdb, err := redis.InitRedis(cfg.Redis)
	if err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		panic(err)
	}
	defer func() { _ = rdb.Close() }()

	tokens := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpirationHours)*time.Hour, cfg.JWT.Issuer)
	gateway := security.NewGateway(tokens, redis.NewTokenBlacklist(rdb))

	// MinIO 连接
	store, err := minio.NewStore(ctx, cfg.MinIO)
	if err != nil {
		log.Error("Fatal error: failed to initialize MinIO", "err", err)
		panic(err)
	}

	// Kafka 生产者，未配置 broker 时不投递事件
	publisher, err := kafka.NewEventPublisher(cfg)
	if err != nil {
		log.Error("Fatal error: failed to create kafka producer", "err", err)
		panic(err)
	}
	defer func() { _ = publisher.Close() }()

	// Mongo 连接，仅用于通知查询
	var notifications mongo.NotificationRepo
	if cfg.Mongo.URL != "" {
		mdb, err := mongo.InitMongo(ctx, cfg.Mongo)
		if err != nil {
			log.Error("Fatal error: failed to create mongo connection", "err", err)
			panic(err)
		}
		defer func() { _ = mdb.Client().Disconnect(context.Background()) }()
		notifications = mongo.NewNotificationRepo(mdb)
	}

	// 依赖注入
	app := wire.BuildApplication(db, cfg, store, gateway, publisher, notifications)

	g, ctx := errgroup.WithContext(ctx)

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
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
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Application exited with error", "err", err)
		os.Exit(1)
	}
	log.Info("Application stopped")
}
