package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Supported blob backends.
const (
	BlobBackendLocal = "local"
	BlobBackendCOS   = "cos"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string        `yaml:"server_port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Database configuration
	DBDriver            string        `yaml:"db_driver"`
	DBHost              string        `yaml:"db_host"`
	DBPort              int           `yaml:"db_port"`
	DBUser              string        `yaml:"db_user"`
	DBPassword          string        `yaml:"db_password"`
	DBName              string        `yaml:"db_name"`
	DBSSLMode           string        `yaml:"db_ssl_mode"`
	DBMaxConns          int32         `yaml:"db_max_conns"`
	DBMinConns          int32         `yaml:"db_min_conns"`
	DBMaxConnLifetime   time.Duration `yaml:"db_max_conn_lifetime"`
	DBMaxConnIdleTime   time.Duration `yaml:"db_max_conn_idle_time"`
	DBHealthCheckPeriod time.Duration `yaml:"db_health_check_period"`
	DBConnectRetries    int           `yaml:"db_connect_retries"`
	// DBDSN is used by the mysql and sqlite drivers.
	DBDSN          string   `yaml:"db_dsn"`
	DBReadReplicas []string `yaml:"db_read_replicas"`

	// Blob storage configuration
	BlobBackend   string `yaml:"blob_backend"`
	BlobLocalDir  string `yaml:"blob_local_dir"`
	BlobBaseURL   string `yaml:"blob_base_url"`
	COSBucketName string `yaml:"cos_bucket_name"`
	COSAppID      string `yaml:"cos_app_id"`
	COSRegion     string `yaml:"cos_region"`
	COSSecretID   string `yaml:"cos_secret_id"`
	COSSecretKey  string `yaml:"cos_secret_key"`
	COSBaseURL    string `yaml:"cos_base_url"`

	// Event publishing; no brokers disables publishing
	KafkaBrokers []string `yaml:"kafka_brokers"`
	KafkaTopic   string   `yaml:"kafka_topic"`

	// Post configuration
	MaxImageBytes int64 `yaml:"max_image_bytes"`
	PageSize      int   `yaml:"page_size"`

	// Logging configuration
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		ServerPort:          "8080",
		ReadTimeout:         30 * time.Second,
		WriteTimeout:        60 * time.Second,
		IdleTimeout:         120 * time.Second,
		ShutdownTimeout:     30 * time.Second,
		DBDriver:            DriverPostgres,
		DBHost:              "localhost",
		DBPort:              5432,
		DBUser:              "postgres",
		DBPassword:          "postgres",
		DBName:              "blog",
		DBSSLMode:           "disable",
		DBMaxConns:          25,
		DBMinConns:          5,
		DBMaxConnLifetime:   time.Hour,
		DBMaxConnIdleTime:   30 * time.Minute,
		DBHealthCheckPeriod: time.Minute,
		DBConnectRetries:    5,
		BlobBackend:         BlobBackendLocal,
		BlobLocalDir:        "./storage",
		BlobBaseURL:         "/storage",
		KafkaTopic:          "blog.posts",
		MaxImageBytes:       2048 * 1024,
		PageSize:            10,
		LogLevel:            "info",
		LogFormat:           "json",
	}
}

// Load loads configuration. Values come from the YAML file named by
// CONFIG_FILE when set, and environment variables override them.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

// LoadFile is Load with an explicit YAML path. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.ReadTimeout = getEnvDuration("HTTP_READ_TIMEOUT", c.ReadTimeout)
	c.WriteTimeout = getEnvDuration("HTTP_WRITE_TIMEOUT", c.WriteTimeout)
	c.IdleTimeout = getEnvDuration("HTTP_IDLE_TIMEOUT", c.IdleTimeout)
	c.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)

	c.DBDriver = strings.ToLower(getEnv("DB_DRIVER", c.DBDriver))
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnvInt("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.DBSSLMode = getEnv("DB_SSL_MODE", c.DBSSLMode)
	c.DBMaxConns = int32(getEnvInt("DB_MAX_CONNS", int(c.DBMaxConns)))
	c.DBMinConns = int32(getEnvInt("DB_MIN_CONNS", int(c.DBMinConns)))
	c.DBMaxConnLifetime = getEnvDuration("DB_MAX_CONN_LIFETIME", c.DBMaxConnLifetime)
	c.DBMaxConnIdleTime = getEnvDuration("DB_MAX_CONN_IDLE_TIME", c.DBMaxConnIdleTime)
	c.DBHealthCheckPeriod = getEnvDuration("DB_HEALTH_CHECK_PERIOD", c.DBHealthCheckPeriod)
	c.DBConnectRetries = getEnvInt("DB_CONNECT_RETRIES", c.DBConnectRetries)
	c.DBDSN = getEnv("DB_DSN", c.DBDSN)
	c.DBReadReplicas = getEnvList("DB_READ_REPLICAS", c.DBReadReplicas)

	c.BlobBackend = strings.ToLower(getEnv("BLOB_BACKEND", c.BlobBackend))
	c.BlobLocalDir = getEnv("BLOB_LOCAL_DIR", c.BlobLocalDir)
	c.BlobBaseURL = getEnv("BLOB_BASE_URL", c.BlobBaseURL)
	c.COSBucketName = getEnv("COS_BUCKET_NAME", c.COSBucketName)
	c.COSAppID = getEnv("COS_APP_ID", c.COSAppID)
	c.COSRegion = getEnv("COS_REGION", c.COSRegion)
	c.COSSecretID = getEnv("COS_SECRET_ID", c.COSSecretID)
	c.COSSecretKey = getEnv("COS_SECRET_KEY", c.COSSecretKey)
	c.COSBaseURL = getEnv("COS_BASE_URL", c.COSBaseURL)

	c.KafkaBrokers = getEnvList("KAFKA_BROKERS", c.KafkaBrokers)
	c.KafkaTopic = getEnv("KAFKA_TOPIC", c.KafkaTopic)

	c.MaxImageBytes = int64(getEnvInt("MAX_IMAGE_BYTES", int(c.MaxImageBytes)))
	c.PageSize = getEnvInt("PAGE_SIZE", c.PageSize)

	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case DriverMySQL, DriverSQLite:
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required for driver %s", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.BlobBackend {
	case BlobBackendLocal:
		if c.BlobLocalDir == "" {
			return fmt.Errorf("BLOB_LOCAL_DIR is required")
		}
	case BlobBackendCOS:
		if c.COSBucketName == "" || c.COSAppID == "" || c.COSRegion == "" {
			return fmt.Errorf("COS_BUCKET_NAME, COS_APP_ID and COS_REGION are required")
		}
	default:
		return fmt.Errorf("unsupported BLOB_BACKEND %q", c.BlobBackend)
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	if c.MaxImageBytes < 1 {
		return fmt.Errorf("MAX_IMAGE_BYTES must be at least 1")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1")
	}
	return nil
}

// PostgresDSN builds the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvList gets a comma-separated environment variable with a default value.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
