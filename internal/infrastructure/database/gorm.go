package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"blog-service/internal/logger"
)

// GormConfig holds the configuration for a GORM-managed database.
type GormConfig struct {
	Driver          string // "mysql" or "sqlite"
	DSN             string
	ReplicaDSNs     []string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
	RetryInterval   time.Duration
}

// NewGorm opens a GORM connection with error translation enabled and, for
// MySQL, read replicas registered through dbresolver.
func NewGorm(cfg GormConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported gorm driver %q", cfg.Driver)
	}

	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.Default().Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	}

	db, err := connectGorm(dialector, gormCfg, cfg.ConnectRetries, cfg.RetryInterval)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == "mysql" && len(cfg.ReplicaDSNs) > 0 {
		replicas := make([]gorm.Dialector, 0, len(cfg.ReplicaDSNs))
		for _, dsn := range cfg.ReplicaDSNs {
			if dsn != "" {
				replicas = append(replicas, mysql.Open(dsn))
			}
		}
		if len(replicas) > 0 {
			err := db.Use(dbresolver.Register(dbresolver.Config{
				Replicas: replicas,
				Policy:   dbresolver.RandomPolicy{},
			}))
			if err != nil {
				closeGorm(db)
				return nil, fmt.Errorf("register read replicas: %w", err)
			}
			logger.Info("Read replicas registered", slog.Int("count", len(replicas)))
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// connectGorm opens and pings the database up to retries times. The pool of
// every failed attempt is closed before the next one.
func connectGorm(dialector gorm.Dialector, gormCfg *gorm.Config, retries int, interval time.Duration) (*gorm.DB, error) {
	if retries < 1 {
		retries = 1
	}

	var err error
	for i := 0; i < retries; i++ {
		var db *gorm.DB
		if db, err = openGorm(dialector, gormCfg); err == nil {
			return db, nil
		}
		logger.Warn("Database not reachable, retrying",
			slog.Int("attempt", i+1),
			slog.Int("max_attempts", retries),
			slog.String("error", err.Error()))
		if i < retries-1 {
			time.Sleep(interval)
		}
	}
	return nil, err
}

func openGorm(dialector gorm.Dialector, gormCfg *gorm.Config) (*gorm.DB, error) {
	// gorm.Open hands back the handle alongside a failed automatic ping.
	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		closeGorm(db)
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func closeGorm(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil && sqlDB != nil {
		sqlDB.Close()
	}
}
