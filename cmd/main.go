package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/samandr77/microservices/backoffice/internal/api"
	"github.com/samandr77/microservices/backoffice/internal/api/events"
	"github.com/samandr77/microservices/backoffice/internal/catalog"
	"github.com/samandr77/microservices/backoffice/internal/clients/gomail"
	"github.com/samandr77/microservices/backoffice/internal/httpclients/imagehost"
	"github.com/samandr77/microservices/backoffice/internal/httpclients/recordstore"
	"github.com/samandr77/microservices/backoffice/internal/repository"
	"github.com/samandr77/microservices/backoffice/internal/service"
	"github.com/samandr77/microservices/backoffice/pkg/broker"
	"github.com/samandr77/microservices/backoffice/pkg/config"
	"github.com/samandr77/microservices/backoffice/pkg/job"
	"github.com/samandr77/microservices/backoffice/pkg/logger"
	"github.com/samandr77/microservices/backoffice/pkg/postgres"
)

const goodsCodePrefix = "backoffice:goods-code"

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("init logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(ctx, cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	store := recordstore.NewClient(recordstore.Config{
		BaseURL:   cfg.RecordStore.BaseURL,
		AppID:     cfg.RecordStore.AppID,
		AccessKey: cfg.RecordStore.AccessKey,
		Locale:    cfg.RecordStore.Locale,
		Timezone:  cfg.RecordStore.Timezone,
		Timeout:   cfg.RecordStore.Timeout,
	})
	images := imagehost.NewClient(cfg.ImageHost.UploadURL, cfg.ImageHost.Timeout)

	var codes service.Allocator = catalog.SnapshotAllocator{}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		err = rdb.Ping(ctx).Err()
		panicOnErr("ping redis", err)

		codes = catalog.NewRedisAllocator(rdb, goodsCodePrefix)

		slog.InfoContext(ctx, "goods codes allocated in redis", "addr", cfg.Redis.Addr)
	}

	var mailer service.Mailer

	if cfg.Mailer.Enabled() {
		mailer = gomail.New(cfg.Mailer)
	}

	var producer service.Producer

	if cfg.Kafka.Enabled {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.MutatedTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(store, images, codes, producer, repo, mailer)

	// Kafka consumers
	if cfg.Kafka.Enabled {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.MutatedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.MutatedTopic, eventHandler.OnRecordMutated)
		consumer.Consume(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	jobs := job.NewRunner().
		Register(cfg.Jobs.OverdueCareEnabled, "overdue_care", cfg.Jobs.OverdueCareInterval, s.NotifyOverdueCare)
	jobs.Start(ctx)

	waitSignal(cancel, server)

	jobs.Wait()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
