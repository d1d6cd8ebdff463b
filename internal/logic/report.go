package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hooplab/scoring-api/internal/models"
)

type reportService struct {
	source GameLogSource
	logger *zap.SugaredLogger
}

func NewReportService(source GameLogSource, logger *zap.Logger) ReportService {
	return &reportService{source: source, logger: logger.Sugar()}
}

// SeasonReport runs the full pipeline for one season: fetch the row
// set, aggregate per-player totals, rank and cut to the top n, compute
// the category breakdown, and reshape into both long-form tables.
// Every stage is a pure function over the previous stage's output; any
// stage error is terminal for the run.
func (s *reportService) SeasonReport(ctx context.Context, season, topN int) (*models.SeasonReport, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	start := time.Now()

	rows, err := s.source.SeasonGameLogs(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("fetch season %d: %w", season, err)
	}

	totals, err := Aggregate(rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate season %d: %w", season, err)
	}

	selected := SelectTopN(totals, topN)

	breakdowns, err := ComputeBreakdowns(rows, selected)
	if err != nil {
		return nil, fmt.Errorf("breakdown season %d: %w", season, err)
	}

	long := Unpivot(breakdowns)

	report := &models.SeasonReport{
		ReportID:    uuid.NewString(),
		Season:      season,
		TopN:        topN,
		GeneratedAt: time.Now().UTC(),
		Players:     breakdowns,
		Points:      long,
		Shares:      PercentView(long),
	}

	s.logger.Infow("Season report generated",
		"season", season,
		"rows", len(rows),
		"players", len(totals),
		"selected", len(selected),
		"duration", time.Since(start),
	)

	return report, nil
}
