package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestSeasonGameLogs_AssemblesPagesInOrder(t *testing.T) {
	// Three pages; numeric columns arrive as numbers, strings, and nulls
	pages := map[string]string{
		"1": `{"season":2024,"page":1,"total_pages":3,"rows":[
			{"player_name":"A","pts":30,"fgm":13,"fg3m":2,"ftm":2}]}`,
		"2": `{"season":2024,"page":2,"total_pages":3,"rows":[
			{"player_name":"B","pts":"17","fgm":"7","fg3m":"1","ftm":"2"}]}`,
		"3": `{"season":2024,"page":3,"total_pages":3,"rows":[
			{"player_name":"C","pts":null,"fgm":null,"fg3m":null,"ftm":null}]}`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/gamelogs" {
			http.NotFound(w, r)
			return
		}
		body, ok := pages[r.URL.Query().Get("page")]
		if !ok {
			http.Error(w, "no such page", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2, zap.NewNop())

	rows, err := client.SeasonGameLogs(context.Background(), 2024)
	if err != nil {
		t.Fatalf("SeasonGameLogs failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Page order preserved
	if rows[0].PlayerName != "A" || rows[1].PlayerName != "B" || rows[2].PlayerName != "C" {
		t.Errorf("rows out of page order: %s, %s, %s", rows[0].PlayerName, rows[1].PlayerName, rows[2].PlayerName)
	}

	// String-encoded numerics coerced
	if rows[1].Points != 17 || rows[1].FGM != 7 {
		t.Errorf("string coercion failed: %+v", rows[1])
	}

	// Nulls become zero
	if rows[2].Points != 0 || rows[2].FGM != 0 || rows[2].FG3M != 0 || rows[2].FTM != 0 {
		t.Errorf("null columns should be zero: %+v", rows[2])
	}
}

func TestSeasonGameLogs_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2, zap.NewNop())

	_, err := client.SeasonGameLogs(context.Background(), 2024)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.Season != 2024 {
		t.Errorf("expected season 2024 in error, got %d", fetchErr.Season)
	}
}

func TestSeasonGameLogs_FailedPageFailsFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"season":2024,"page":1,"total_pages":2,"rows":[]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2, zap.NewNop())

	_, err := client.SeasonGameLogs(context.Background(), 2024)
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError when a page fails, got %v", err)
	}
}

func TestSeasonGameLogs_EmptySeason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"season":1950,"page":1,"total_pages":0,"rows":[]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 2, zap.NewNop())

	rows, err := client.SeasonGameLogs(context.Background(), 1950)
	if err != nil {
		t.Fatalf("empty season should not error at the fetch layer: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}
