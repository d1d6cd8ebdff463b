package logic

import (
	"context"

	"github.com/hooplab/scoring-api/internal/models"
)

// GameLogSource is the fetch collaborator: it returns the complete,
// already-assembled row set for a season or fails outright. Any
// parallelism or caching behind the call is the implementation's
// business; the pipeline treats it as a single blocking fetch.
type GameLogSource interface {
	SeasonGameLogs(ctx context.Context, season int) ([]models.GameLogRow, error)
}

// ReportService builds the full season scoring report.
type ReportService interface {
	SeasonReport(ctx context.Context, season, topN int) (*models.SeasonReport, error)
}
