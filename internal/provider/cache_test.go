package provider

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hooplab/scoring-api/internal/models"
)

// MockRedisCache implements RedisCache for testing
type MockRedisCache struct {
	store    map[string]string
	getCalls int
	setCalls int
	getErr   error
}

func NewMockRedisCache() *MockRedisCache {
	return &MockRedisCache{store: make(map[string]string)}
}

func (m *MockRedisCache) Get(ctx context.Context, key string) *redis.StringCmd {
	m.getCalls++
	if m.getErr != nil {
		return redis.NewStringResult("", m.getErr)
	}
	if v, ok := m.store[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.setCalls++
	switch v := value.(type) {
	case []byte:
		m.store[key] = string(v)
	case string:
		m.store[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

type countingSource struct {
	rows  []models.GameLogRow
	err   error
	calls int
}

func (c *countingSource) SeasonGameLogs(ctx context.Context, season int) ([]models.GameLogRow, error) {
	c.calls++
	return c.rows, c.err
}

func TestCachedSource_MissThenHit(t *testing.T) {
	rows := []models.GameLogRow{
		{PlayerName: "A", Points: 28, FGM: 12, FG3M: 2, FTM: 0},
	}
	source := &countingSource{rows: rows}
	cache := NewMockRedisCache()

	cached := NewCachedSource(source, cache, time.Minute, zap.NewNop())

	// Miss: falls through and writes back
	got, err := cached.SeasonGameLogs(context.Background(), 2024)
	if err != nil {
		t.Fatalf("SeasonGameLogs failed: %v", err)
	}
	if len(got) != 1 || source.calls != 1 || cache.setCalls != 1 {
		t.Fatalf("miss path wrong: rows=%d sourceCalls=%d setCalls=%d", len(got), source.calls, cache.setCalls)
	}

	// Hit: source untouched
	got, err = cached.SeasonGameLogs(context.Background(), 2024)
	if err != nil {
		t.Fatalf("SeasonGameLogs failed on hit: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("expected cache hit to skip the source, source called %d times", source.calls)
	}
	if got[0].PlayerName != "A" || got[0].Points != 28 {
		t.Errorf("cached rows corrupted: %+v", got[0])
	}
}

func TestCachedSource_CorruptEntryFallsThrough(t *testing.T) {
	source := &countingSource{rows: []models.GameLogRow{{PlayerName: "A"}}}
	cache := NewMockRedisCache()
	cache.store[cacheKey(2024)] = "{not json"

	cached := NewCachedSource(source, cache, time.Minute, zap.NewNop())

	got, err := cached.SeasonGameLogs(context.Background(), 2024)
	if err != nil {
		t.Fatalf("SeasonGameLogs failed: %v", err)
	}
	if source.calls != 1 {
		t.Errorf("corrupt entry should fall through to source")
	}
	if len(got) != 1 {
		t.Errorf("expected source rows, got %d", len(got))
	}
}

func TestCachedSource_CacheErrorIsNotFatal(t *testing.T) {
	source := &countingSource{rows: []models.GameLogRow{{PlayerName: "A"}}}
	cache := NewMockRedisCache()
	cache.getErr = context.DeadlineExceeded

	cached := NewCachedSource(source, cache, time.Minute, zap.NewNop())

	got, err := cached.SeasonGameLogs(context.Background(), 2024)
	if err != nil {
		t.Fatalf("cache read failure must not fail the fetch: %v", err)
	}
	if len(got) != 1 || source.calls != 1 {
		t.Errorf("expected fall-through on cache error")
	}
}

func TestCachedSource_RoundTripsRows(t *testing.T) {
	rows := []models.GameLogRow{
		{PlayerName: "A", Points: 28, FGM: 12, FG3M: 2, FTM: 0},
		{PlayerName: "B", Points: 17, FGM: 7, FG3M: 1, FTM: 2},
	}
	source := &countingSource{rows: rows}
	cache := NewMockRedisCache()

	cached := NewCachedSource(source, cache, time.Minute, zap.NewNop())
	if _, err := cached.SeasonGameLogs(context.Background(), 2024); err != nil {
		t.Fatalf("SeasonGameLogs failed: %v", err)
	}

	var stored []models.GameLogRow
	if err := json.Unmarshal([]byte(cache.store[cacheKey(2024)]), &stored); err != nil {
		t.Fatalf("stored payload is not valid JSON: %v", err)
	}
	if len(stored) != 2 || stored[1].Points != 17 {
		t.Errorf("stored rows do not match source: %+v", stored)
	}
}
