package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hooplab/scoring-api/internal/logic"
	"github.com/hooplab/scoring-api/internal/render"
)

type Config struct {
	Redis  *redis.Client
	Logger *zap.Logger
	// Services
	Report logic.ReportService
	// Report defaults
	DefaultSeason int
	DefaultTopN   int
	Theme         render.Theme
}

type Handler struct {
	redis         *redis.Client
	logger        *zap.SugaredLogger
	validator     *validator.Validate
	report        logic.ReportService
	defaultSeason int
	defaultTopN   int
	theme         render.Theme
}

func New(cfg Config) *Handler {
	topN := cfg.DefaultTopN
	if topN <= 0 {
		topN = logic.DefaultTopN
	}
	return &Handler{
		redis:         cfg.Redis,
		logger:        cfg.Logger.Sugar(),
		validator:     validator.New(),
		report:        cfg.Report,
		defaultSeason: cfg.DefaultSeason,
		defaultTopN:   topN,
		theme:         cfg.Theme,
	}
}
