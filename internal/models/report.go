package models

import "time"

// PlayerSeasonTotals aggregates every GameLogRow for one player.
// Recomputed from scratch each run, never updated incrementally.
type PlayerSeasonTotals struct {
	PlayerName    string  `json:"player_name"`
	TotalPoints   int64   `json:"total_points"`
	GamesPlayed   int64   `json:"games_played"`
	PointsPerGame float64 `json:"ppg"`
}

// ScoringBreakdown extends season totals with points attributed to the
// three scoring categories. The category points always sum exactly to
// TotalPoints. When TotalPoints is zero the shares are mathematically
// undefined; SharesDefined is false and all three shares are zero so
// that no NaN or Inf ever reaches serialized output.
type ScoringBreakdown struct {
	PlayerSeasonTotals

	Points2PT int64 `json:"points_2pt"`
	Points3PT int64 `json:"points_3pt"`
	PointsFT  int64 `json:"points_ft"`

	Share2PT      float64 `json:"pct_2pt"`
	Share3PT      float64 `json:"pct_3pt"`
	ShareFT       float64 `json:"pct_ft"`
	SharesDefined bool    `json:"shares_defined"`
}

// LongFormRow is one (player, category, points) tuple of the unpivoted
// breakdown table. Each player contributes exactly three rows, in the
// order given by Categories.
type LongFormRow struct {
	PlayerName string   `json:"player_name"`
	Category   Category `json:"category"`
	Points     int64    `json:"points"`
}

// PercentRow is the percent-normalized counterpart of LongFormRow, used
// for share-of-total plotting.
type PercentRow struct {
	PlayerName string   `json:"player_name"`
	Category   Category `json:"category"`
	Percent    float64  `json:"percent"`
}

// SeasonReport is the full report payload: the ranked wide table plus
// both long-form views and the narrative commentary. Players carries
// the ranking order (descending points per game) that renderers must
// preserve on the player axis.
type SeasonReport struct {
	ReportID    string             `json:"report_id"`
	Season      int                `json:"season"`
	TopN        int                `json:"top_n"`
	GeneratedAt time.Time          `json:"generated_at"`
	Players     []ScoringBreakdown `json:"players"`
	Points      []LongFormRow      `json:"points"`
	Shares      []PercentRow       `json:"shares"`
	Commentary  []string           `json:"commentary,omitempty"`
}
