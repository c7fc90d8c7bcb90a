package main

import (
	"Inkpost/internal/api/config"
	"Inkpost/internal/job"
	"Inkpost/internal/pkg/cron"
	"Inkpost/internal/pkg/kafka"
	"Inkpost/internal/pkg/logger"
	"Inkpost/internal/pkg/mongo"
	"context"
	"errors"
	log "log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	logger.InitLogger("inkpost-notifier")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mongo 连接
	mdb, err := mongo.InitMongo(ctx, cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		panic(err)
	}
	defer func() { _ = mdb.Client().Disconnect(context.Background()) }()

	repo := mongo.NewNotificationRepo(mdb)
	if err = repo.EnsureIndexes(ctx); err != nil {
		log.Error("Fatal error: failed to create notification indexes", "err", err)
		panic(err)
	}

	// Kafka 消费者
	kafkaMgr, err := kafka.NewConsumerManager(cfg, repo)
	if err != nil {
		log.Error("Fatal error: failed to create kafka consumer", "err", err)
		panic(err)
	}

	// 定时任务
	cronMgr := cron.NewCronManager()
	cronMgr.Add(cfg.Notifier.PruneSpec, job.NewNotificationPruneJob(repo, cfg.Notifier.RetentionDays))
	if err = cron.InitCron(cronMgr); err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		cronMgr.Stop()
		return nil
	})

	g.Go(func() error {
		log.Info("Kafka Consumers starting...")
		return kafkaMgr.Start(ctx)
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
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Notifier exited with error", "err", err)
		os.Exit(1)
	}
	log.Info("Notifier stopped")
}
