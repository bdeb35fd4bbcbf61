package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"blog-service/internal/blobstore"
	"blog-service/internal/config"
	"blog-service/internal/events"
	"blog-service/internal/handler"
	"blog-service/internal/infrastructure/database"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/repository"
)

const connectRetryInterval = 2 * time.Second

// backend is the opened database and the repositories built on it.
type backend struct {
	posts     repository.PostRepository
	users     repository.UserRepository
	ping      handler.PingFunc
	poolStats *metrics.PoolStatsCollector
	gorm      *gorm.DB
	close     func()
}

// openBackend connects to the configured database driver.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	if cfg.DBDriver == config.DriverPostgres {
		pool, err := database.NewPostgres(ctx, database.PoolConfig{
			DSN:               cfg.PostgresDSN(),
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
			ConnectRetries:    cfg.DBConnectRetries,
			RetryInterval:     connectRetryInterval,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return &backend{
			posts:     repository.NewPostgresPostRepository(pool),
			users:     repository.NewPostgresUserRepository(pool),
			ping:      func(ctx context.Context) error { return database.HealthCheck(ctx, pool) },
			poolStats: metrics.NewPoolStatsCollector(pool),
			close:     pool.Close,
		}, nil
	}

	db, err := database.NewGorm(database.GormConfig{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DBDSN,
		ReplicaDSNs:     cfg.DBReadReplicas,
		MaxOpenConns:    int(cfg.DBMaxConns),
		MaxIdleConns:    int(cfg.DBMinConns),
		ConnMaxLifetime: cfg.DBMaxConnLifetime,
		ConnectRetries:  cfg.DBConnectRetries,
		RetryInterval:   connectRetryInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DBDriver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	return &backend{
		posts:     repository.NewGormPostRepository(db),
		users:     repository.NewGormUserRepository(db),
		ping:      sqlDB.PingContext,
		poolStats: metrics.NewSQLPoolStatsCollector(sqlDB),
		gorm:      db,
		close: func() {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database", slog.String("error", err.Error()))
			}
		},
	}, nil
}

// openBlobStore builds the configured blob backend. The local store is
// returned separately so the server can expose its directory.
func openBlobStore(cfg *config.Config) (blobstore.BlobStore, *blobstore.LocalStore, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendCOS:
		store, err := blobstore.NewCOSStore(blobstore.COSConfig{
			BucketName: cfg.COSBucketName,
			AppID:      cfg.COSAppID,
			Region:     cfg.COSRegion,
			SecretID:   cfg.COSSecretID,
			SecretKey:  cfg.COSSecretKey,
			BaseURL:    cfg.COSBaseURL,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	default:
		store, err := blobstore.NewLocalStore(cfg.BlobLocalDir, cfg.BlobBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	}
}

// openPublisher returns a Kafka publisher, or a no-op one when no brokers
// are configured.
func openPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("No Kafka brokers configured, post events disabled")
		return events.NoopPublisher{}
	}
	logger.Info("Publishing post events",
		slog.Any("brokers", cfg.KafkaBrokers),
		slog.String("topic", cfg.KafkaTopic))
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}
