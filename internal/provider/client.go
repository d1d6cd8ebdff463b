// Package provider implements the game log fetch collaborator: an HTTP
// client for a paginated season game log endpoint, plus a Redis-backed
// caching layer. Callers see a single blocking fetch that returns the
// complete row set for a season or fails with a FetchError.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hooplab/scoring-api/internal/models"
)

var (
	pagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoring_provider_pages_fetched_total",
		Help: "Total number of game log pages fetched from the provider",
	})

	fetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoring_provider_fetch_failures_total",
		Help: "Total number of failed season fetches",
	})

	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scoring_provider_fetch_duration_seconds",
		Help:    "Duration of full season fetches",
		Buckets: prometheus.DefBuckets,
	})
)

// FetchError wraps any failure while retrieving a season's rows.
type FetchError struct {
	Season int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch season %d: %v", e.Season, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches paginated season game logs over HTTP. Pages after the
// first are fetched in parallel, bounded by the configured concurrency,
// over a pooled http.Client.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	concurrency int
	logger      *zap.SugaredLogger
}

func NewClient(baseURL string, concurrency int, logger *zap.Logger) *Client {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		userAgent:   "scoring-api/1.0",
		concurrency: concurrency,
		logger:      logger.Sugar(),
	}
}

// gameLogPage is the provider's wire envelope for one page of rows.
type gameLogPage struct {
	Season     int           `json:"season"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Rows       []gameLogItem `json:"rows"`
}

// gameLogItem tolerates string-encoded and null numeric columns.
type gameLogItem struct {
	PlayerName string         `json:"player_name"`
	Points     models.FlexInt `json:"pts"`
	FGM        models.FlexInt `json:"fgm"`
	FG3M       models.FlexInt `json:"fg3m"`
	FTM        models.FlexInt `json:"ftm"`
}

// SeasonGameLogs fetches every page of the season's game logs and
// assembles them in page order. The first page is fetched alone to
// learn the page count; the rest go through an errgroup with a
// concurrency limit.
func (c *Client) SeasonGameLogs(ctx context.Context, season int) ([]models.GameLogRow, error) {
	start := time.Now()

	first, err := c.fetchPage(ctx, season, 1)
	if err != nil {
		fetchFailures.Inc()
		return nil, &FetchError{Season: season, Err: err}
	}

	// An empty season reports zero pages; the first (empty) page still counts.
	if first.TotalPages < 1 {
		first.TotalPages = 1
	}

	pages := make([][]models.GameLogRow, first.TotalPages)
	pages[0] = convertRows(first.Rows)

	if first.TotalPages > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.concurrency)

		for p := 2; p <= first.TotalPages; p++ {
			p := p
			g.Go(func() error {
				page, err := c.fetchPage(gctx, season, p)
				if err != nil {
					return err
				}
				pages[p-1] = convertRows(page.Rows)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			fetchFailures.Inc()
			return nil, &FetchError{Season: season, Err: err}
		}
	}

	var rows []models.GameLogRow
	for _, p := range pages {
		rows = append(rows, p...)
	}

	fetchDuration.Observe(time.Since(start).Seconds())
	c.logger.Infow("Season game logs fetched",
		"season", season,
		"pages", first.TotalPages,
		"rows", len(rows),
		"duration", time.Since(start),
	)

	return rows, nil
}

func (c *Client) fetchPage(ctx context.Context, season, page int) (*gameLogPage, error) {
	url := fmt.Sprintf("%s/v1/gamelogs?season=%d&page=%d", c.baseURL, season, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("provider error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var result gameLogPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding page %d: %w", page, err)
	}

	pagesFetched.Inc()
	return &result, nil
}

func convertRows(items []gameLogItem) []models.GameLogRow {
	rows := make([]models.GameLogRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, models.GameLogRow{
			PlayerName: it.PlayerName,
			Points:     it.Points.Int64(),
			FGM:        it.FGM.Int64(),
			FG3M:       it.FG3M.Int64(),
			FTM:        it.FTM.Int64(),
		})
	}
	return rows
}
