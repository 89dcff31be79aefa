// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/equilibra/v1/internal/application/nutrition"
	"github.com/equilibra/v1/internal/infrastructure/ai/ollama"
	"github.com/equilibra/v1/internal/infrastructure/config"
	"github.com/equilibra/v1/internal/infrastructure/http/server"
	"github.com/equilibra/v1/internal/infrastructure/monitoring"
	gormRepo "github.com/equilibra/v1/internal/infrastructure/persistence/gorm"
	"github.com/equilibra/v1/internal/infrastructure/persistence/memory"
	redisRepo "github.com/equilibra/v1/internal/infrastructure/persistence/redis"
	"github.com/equilibra/v1/internal/infrastructure/persistence/sqlite"
	"github.com/equilibra/v1/internal/ports/outbound"
	"github.com/equilibra/v1/pkg/healthcheck"
	"github.com/equilibra/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	CatalogModule,
	CacheModule,
	AIModule,
	MonitoringModule,
	HealthModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// CatalogModule provides the food and override repositories. Depending
// on configuration the catalog lives in memory or in SQLite through
// GORM. The *gorm.DB is nil for the in-memory source.
var CatalogModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.FoodRepository, outbound.OverrideRepository, *gorm.DB, error) {
		switch cfg.Catalog.Source {
		case "database":
			db, err := sqlite.SetupDatabase(cfg.Database.Path, gormLogLevel(cfg))
			if err != nil {
				return nil, nil, nil, fmt.Errorf("failed to setup database: %w", err)
			}
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
			log.Info("Catalog backed by SQLite",
				zap.String("path", cfg.Database.Path))
			return gormRepo.NewFoodRepository(db), gormRepo.NewOverrideRepository(db), db, nil

		default:
			foodRepo, err := buildMemoryCatalog(cfg, log)
			if err != nil {
				return nil, nil, nil, err
			}
			return foodRepo, memory.NewOverrideRepository(), nil, nil
		}
	},
)

func buildMemoryCatalog(cfg *config.Config, log *zap.Logger) (outbound.FoodRepository, error) {
	if cfg.Catalog.SeedFile != "" {
		repo, err := memory.NewFoodRepositoryFromFile(cfg.Catalog.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog from %s: %w", cfg.Catalog.SeedFile, err)
		}
		log.Info("Catalog loaded from file", zap.String("path", cfg.Catalog.SeedFile))
		return repo, nil
	}
	log.Info("Catalog backed by built-in seed data")
	return memory.NewSeededFoodRepository(), nil
}

func gormLogLevel(cfg *config.Config) gormLogger.LogLevel {
	if cfg.App.Debug {
		return gormLogger.Info
	}
	switch cfg.Database.LogLevel {
	case "info":
		return gormLogger.Info
	case "warn":
		return gormLogger.Warn
	case "error":
		return gormLogger.Error
	default:
		return gormLogger.Silent
	}
}

// CacheModule provides caching. The *redis.Client is nil when Redis is
// disabled and the in-memory cache is used instead.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, *redis.Client) {
		if !cfg.Redis.Enabled {
			log.Info("Using in-memory cache")
			return memory.NewCacheRepository(), nil
		}

		client := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.Database,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			PoolSize:     cfg.Redis.PoolSize,
		})
		log.Info("Using Redis cache", zap.String("addr", cfg.RedisAddr()))
		return redisRepo.NewCacheRepository(client, log), client
	},
)

// AIModule provides the reasoning text polisher. Both values are nil
// when the AI integration is disabled; the services fall back to the
// deterministic template text.
var AIModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.TextPolisher, *ollama.Client) {
		if !cfg.AI.Enabled {
			return nil, nil
		}
		client := ollama.NewClient(ollama.Config{
			BaseURL:        cfg.AI.OllamaURL,
			Model:          cfg.AI.Model,
			Temperature:    cfg.AI.Temperature,
			RequestTimeout: cfg.AI.RequestTimeout,
		}, log)
		return client, client
	},
)

// MonitoringModule provides the Prometheus metrics collector
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
	func(m *monitoring.MetricsCollector) outbound.EngineMetrics {
		return m
	},
)

// HealthModule provides the dependency checker backing the readiness
// endpoint. Only probes for enabled dependencies are registered.
var HealthModule = fx.Provide(
	func(log *zap.Logger, db *gorm.DB, rdb *redis.Client, aiClient *ollama.Client) *healthcheck.Checker {
		checker := healthcheck.NewChecker(log)
		if db != nil {
			checker.Register("database", healthcheck.DatabaseCheck(db))
		}
		if rdb != nil {
			checker.Register("redis", healthcheck.RedisCheck(rdb))
		}
		if aiClient != nil {
			checker.Register("ollama", healthcheck.ServiceCheck(aiClient.HealthCheck))
		}
		return checker
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	nutrition.NewNutritionService,
	nutrition.NewCatalogService,
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	server *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Equilibra engine",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Equilibra engine")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if db != nil {
				if sqlDB, err := db.DB(); err == nil {
					if err := sqlDB.Close(); err != nil {
						log.Error("Failed to close database connection", zap.Error(err))
					}
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
