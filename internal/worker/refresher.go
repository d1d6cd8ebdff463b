// Package worker implements the background cache refresher. It
// periodically re-fetches the configured season through the caching
// source so that report requests rarely pay the full provider
// round trip. The pipeline itself never depends on it.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/hooplab/scoring-api/internal/logic"
)

var (
	refreshTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoring_refresh_total",
		Help: "Total number of season cache refreshes attempted",
	})

	refreshFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoring_refresh_failures_total",
		Help: "Total number of failed season cache refreshes",
	})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scoring_refresh_duration_seconds",
		Help:    "Duration of season cache refreshes",
		Buckets: prometheus.DefBuckets,
	})

	lastRefreshUnix = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scoring_last_refresh_timestamp_seconds",
		Help: "Unix timestamp of the last successful refresh",
	})
)

// Refresher periodically warms the game log cache for one season.
type Refresher struct {
	source   logic.GameLogSource
	season   int
	interval time.Duration
	logger   *zap.SugaredLogger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRefresher(source logic.GameLogSource, season int, interval time.Duration, logger *zap.Logger) *Refresher {
	return &Refresher{
		source:   source,
		season:   season,
		interval: interval,
		logger:   logger.Sugar(),
	}
}

// Start launches the refresh loop. The first refresh runs immediately.
func (r *Refresher) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)

	r.wg.Add(1)
	go r.loop()

	r.logger.Infow("Cache refresher started", "season", r.season, "interval", r.interval)
}

// Stop cancels the loop and waits for the in-flight refresh to finish.
func (r *Refresher) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	r.wg.Wait()
	r.logger.Info("Cache refresher stopped")
}

func (r *Refresher) loop() {
	defer r.wg.Done()

	r.RefreshNow(r.ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.RefreshNow(r.ctx)
		case <-r.ctx.Done():
			return
		}
	}
}

// RefreshNow performs one refresh pass. Failures are logged and
// counted; the next tick tries again.
func (r *Refresher) RefreshNow(ctx context.Context) {
	refreshTotal.Inc()
	start := time.Now()

	rows, err := r.source.SeasonGameLogs(ctx, r.season)
	refreshDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		refreshFailures.Inc()
		r.logger.Errorw("Season cache refresh failed", "season", r.season, "error", err)
		return
	}

	lastRefreshUnix.Set(float64(time.Now().Unix()))
	r.logger.Infow("Season cache refreshed", "season", r.season, "rows", len(rows), "duration", time.Since(start))
}
