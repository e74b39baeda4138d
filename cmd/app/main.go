package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusfood/cmd"
	"campusfood/internal/adapters/out/kafka"
	"campusfood/internal/adapters/out/postgres"
	"campusfood/internal/adapters/out/rabbitmq"
	"campusfood/internal/adapters/out/redis"
	"campusfood/internal/core/ports"

	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, appLogger); err != nil {
		log.Fatalf("campusfood stopped: %v", err)
	}
}

func run(ctx context.Context, cfg cmd.Config, appLogger *slog.Logger) error {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err = postgres.Migrate(db); err != nil {
		return err
	}

	redisClient := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, cfg.MenuCacheTTL)
	if pingErr := cache.Ping(ctx); pingErr != nil {
		appLogger.Warn("redis unavailable, menus are read from the database", "error", pingErr)
	}

	publisher, closePublisher, err := openPublisher(cfg)
	if err != nil {
		return err
	}
	defer closePublisher()

	app, err := cmd.NewCompositionRoot(cfg, db, cache, publisher, appLogger)
	if err != nil {
		return err
	}
	router, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}
	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr: ":" + cfg.HTTPPort,
		Handler: cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("http server listening", "addr", server.Addr, "broker", cfg.EventBroker)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return serveErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		appLogger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openPublisher connects to the configured broker. With no broker the publisher is
// nil and order events stay in the outbox.
func openPublisher(cfg cmd.Config) (ports.EventPublisher, func(), error) {
	switch cfg.EventBroker {
	case cmd.BrokerKafka:
		p := kafka.NewPublisher(kafka.NewWriter(cfg.KafkaBrokers, cfg.KafkaOrderEventsTopic))
		return p, func() { _ = p.Close() }, nil
	case cmd.BrokerRabbitMQ:
		conn, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return nil, func() {}, err
		}
		return rabbitmq.NewPublisher(conn.Channel, cfg.RabbitMQExchange), func() { _ = conn.Close() }, nil
	}
	return nil, func() {}, nil
}
