// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, post writes, slugs, blobs, and database pools.
package metrics

import (
	"database/sql"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "blog"
)

// Results used as label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Post write metrics - one observation per create, update, or delete
	PostOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "posts",
			Name:      "operations_total",
			Help:      "Total number of post write operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	PostOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "posts",
			Name:      "operation_duration_seconds",
			Help:      "Post write duration in seconds, including image storage",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	// Slug metrics
	SlugProbesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "slugs",
			Name:      "probes_total",
			Help:      "Total number of candidate slugs checked for existence",
		},
	)

	SlugConflictRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "slugs",
			Name:      "conflict_retries_total",
			Help:      "Total number of writes retried after losing a slug race",
		},
	)

	// Blob metrics
	BlobOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blobs",
			Name:      "operations_total",
			Help:      "Total number of blob store calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	OrphanedBlobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "blobs",
			Name:      "orphaned_total",
			Help:      "Total number of blobs left behind without a referencing post, by reason",
		},
		[]string{"reason"},
	)

	// Database metrics - track connection pool usage
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// sqlDBAdapter adapts database/sql pools (as used under gorm) to PoolStatsProvider
type sqlDBAdapter struct {
	db *sql.DB
}

type sqlStats sql.DBStats

func (s sqlStats) TotalConns() int32    { return int32(s.OpenConnections) }
func (s sqlStats) IdleConns() int32     { return int32(s.Idle) }
func (s sqlStats) AcquiredConns() int32 { return int32(s.InUse) }

func (a *sqlDBAdapter) Stat() PoolStats {
	return sqlStats(a.db.Stats())
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a collector for a pgx pool
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewSQLPoolStatsCollector creates a collector for a database/sql pool
func NewSQLPoolStatsCollector(db *sql.DB) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&sqlDBAdapter{db: db})
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector. Safe to call more than once.
func (c *PoolStatsCollector) Stop() {
	c.stopOnce.Do(func() { close(c.stopChan) })
	c.wg.Wait()
}

// ObservePostOperation records the outcome of a post write.
func ObservePostOperation(operation string, err error, durationSeconds float64) {
	PostOperationsTotal.WithLabelValues(operation, resultOf(err)).Inc()
	PostOperationDuration.WithLabelValues(operation).Observe(durationSeconds)
}

// ObserveBlobOperation records the outcome of a blob store call.
func ObserveBlobOperation(operation string, err error) {
	BlobOperationsTotal.WithLabelValues(operation, resultOf(err)).Inc()
}

// RecordOrphanedBlob counts a blob that no post references anymore.
func RecordOrphanedBlob(reason string) {
	OrphanedBlobsTotal.WithLabelValues(reason).Inc()
}

func resultOf(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time since the timer was created
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Seconds())
}
