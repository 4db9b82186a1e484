package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"projtrack/internal/config"
	"projtrack/internal/models"
	"projtrack/internal/router"
	"projtrack/pkg/lookupcache"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func runServe() error {
	cfg, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db, logger)

	if cfg.Database.AutoMigrate {
		if err := models.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	cache, closeCache := openCache(cfg, logger)
	defer closeCache()

	r := router.SetupRouter(cfg, logger, db, cache)

	srv := &http.Server{
		Addr:              cfg.Server.GetAddress(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func runInitDB() error {
	_, logger, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(db, logger)

	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	logger.Info("database initialized")
	return nil
}

func bootstrap() (*config.Config, *logrus.Logger, *gorm.DB, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(&cfg.Log)

	db, err := models.Open(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	logger.WithField("driver", cfg.Database.Driver).Info("database connected")

	return cfg, logger, db, nil
}

func newLogger(cfg *config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	// validated by config.LoadConfig
	level, _ := logrus.ParseLevel(cfg.Level)
	logger.SetLevel(level)
	return logger
}

// openCache connects the lookup cache when enabled. An unreachable Redis disables
// the cache instead of failing startup.
func openCache(cfg *config.Config, logger *logrus.Logger) (*lookupcache.Cache, func()) {
	if !cfg.Redis.Enabled {
		return nil, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddress(),
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).WithField("addr", cfg.Redis.GetAddress()).Warn("redis unavailable, lookup cache disabled")
		_ = client.Close()
		return nil, func() {}
	}

	logger.WithField("addr", cfg.Redis.GetAddress()).Info("lookup cache enabled")
	cache := lookupcache.New(client, cfg.Redis.KeyPrefix, cfg.Redis.GetNamesTTL())
	return cache, func() { _ = client.Close() }
}

func closeDB(db *gorm.DB, logger *logrus.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.WithError(err).Warn("close database")
	}
}
