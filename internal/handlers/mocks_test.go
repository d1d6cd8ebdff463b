package handlers

import (
	"context"

	"github.com/hooplab/scoring-api/internal/models"
)

// MockReportService implements logic.ReportService for testing
type MockReportService struct {
	SeasonReportFunc func(ctx context.Context, season, topN int) (*models.SeasonReport, error)
}

func (m *MockReportService) SeasonReport(ctx context.Context, season, topN int) (*models.SeasonReport, error) {
	if m.SeasonReportFunc != nil {
		return m.SeasonReportFunc(ctx, season, topN)
	}
	return &models.SeasonReport{Season: season, TopN: topN}, nil
}
