package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hooplab/scoring-api/internal/logic"
	"github.com/hooplab/scoring-api/internal/provider"
	"github.com/hooplab/scoring-api/internal/render"
)

// reportParams holds the validated request parameters for a report.
type reportParams struct {
	Season int `validate:"required,gte=1946,lte=2100"`
	Top    int `validate:"gte=1,lte=50"`
}

// parseReportParams reads season from the URL and top from the query
// string, applying configured defaults before validation.
func (h *Handler) parseReportParams(r *http.Request) (reportParams, error) {
	params := reportParams{Top: h.defaultTopN}

	seasonStr := chi.URLParam(r, "season")
	if seasonStr == "" {
		params.Season = h.defaultSeason
	} else {
		season, err := strconv.Atoi(seasonStr)
		if err != nil {
			return params, errors.New("season must be an integer year")
		}
		params.Season = season
	}

	if topStr := r.URL.Query().Get("top"); topStr != "" {
		top, err := strconv.Atoi(topStr)
		if err != nil {
			return params, errors.New("top must be an integer")
		}
		params.Top = top
	}

	if err := h.validator.Struct(params); err != nil {
		return params, err
	}
	return params, nil
}

// GetSeasonReport returns the full scoring breakdown report
// @Summary Season Scoring Report
// @Description Top-N players by points per game with 2PT/3PT/FT breakdown tables
// @Tags Report
// @Produce json
// @Param season path int true "Season year (e.g. 2024)"
// @Param top query int false "Number of players" default(10)
// @Success 200 {object} models.SeasonReport "Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "No rows for season"
// @Failure 502 {object} map[string]string "Provider Error"
// @Router /report/{season} [get]
func (h *Handler) GetSeasonReport(w http.ResponseWriter, r *http.Request) {
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

	report.Commentary = render.Commentary(report.Season, report.Players)

	h.jsonResponse(w, http.StatusOK, report)
}

// writeReportError maps pipeline errors onto HTTP statuses. Everything
// is terminal for the request; there is no retry path.
func (h *Handler) writeReportError(w http.ResponseWriter, season int, err error) {
	var (
		integrityErr *logic.DataIntegrityError
		fetchErr     *provider.FetchError
	)

	switch {
	case errors.Is(err, logic.ErrEmptyInput):
		h.errorResponse(w, http.StatusNotFound, "No game logs for season")
	case errors.As(err, &integrityErr):
		h.logger.Errorw("Provider sent inconsistent rows", "season", season, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Provider data failed integrity checks")
	case errors.As(err, &fetchErr):
		h.logger.Errorw("Season fetch failed", "season", season, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Failed to fetch game logs")
	default:
		h.logger.Errorw("Failed to build season report", "season", season, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to build report")
	}
}
