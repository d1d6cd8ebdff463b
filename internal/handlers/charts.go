package handlers

import (
	"fmt"
	"net/http"

	"github.com/hooplab/scoring-api/internal/models"
	"github.com/hooplab/scoring-api/internal/render"
)

// GetPointsChart returns the absolute-volume stacked bar chart
// @Summary Points Breakdown Chart
// @Description Stacked bar chart of 2PT/3PT/FT points for the top-N scorers
// @Tags Report
// @Produce image/svg+xml
// @Param season path int true "Season year"
// @Param top query int false "Number of players" default(10)
// @Success 200 {string} string "SVG"
// @Router /report/{season}/charts/points.svg [get]
func (h *Handler) GetPointsChart(w http.ResponseWriter, r *http.Request) {
	h.serveChart(w, r, func(report *models.SeasonReport) string {
		title := fmt.Sprintf("Top %d Scorers - Points by Category (%d)", report.TopN, report.Season)
		return render.PointsChartSVG(h.theme, title, report.Players)
	})
}

// GetSharesChart returns the percent-normalized stacked bar chart
// @Summary Scoring Shares Chart
// @Description Stacked bar chart of each scorer's 2PT/3PT/FT share of total points
// @Tags Report
// @Produce image/svg+xml
// @Param season path int true "Season year"
// @Param top query int false "Number of players" default(10)
// @Success 200 {string} string "SVG"
// @Router /report/{season}/charts/shares.svg [get]
func (h *Handler) GetSharesChart(w http.ResponseWriter, r *http.Request) {
	h.serveChart(w, r, func(report *models.SeasonReport) string {
		title := fmt.Sprintf("Top %d Scorers - Share of Points (%d)", report.TopN, report.Season)
		return render.SharesChartSVG(h.theme, title, report.Players)
	})
}

func (h *Handler) serveChart(w http.ResponseWriter, r *http.Request, draw func(*models.SeasonReport) string) {
	ctx := r.Context()

	params, err := h.parseReportParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.report.SeasonReport(ctx, params.Season, params.Top)
	if err != nil {
		h.writeReportError(w, params.Season, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(draw(report)))
}
