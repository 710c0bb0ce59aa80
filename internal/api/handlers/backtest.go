package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hooplytics/pra-engine/internal/backtest"
	"github.com/hooplytics/pra-engine/internal/scoring"
	"github.com/hooplytics/pra-engine/internal/types"
	"github.com/hooplytics/pra-engine/pkg/logger"
)

// BacktestHandler replays predicted rankings against recorded actuals.
type BacktestHandler struct {
	engine *scoring.Engine
	logger *logrus.Logger
}

// NewBacktestHandler creates a backtest handler.
func NewBacktestHandler(engine *scoring.Engine, logger *logrus.Logger) *BacktestHandler {
	return &BacktestHandler{engine: engine, logger: logger}
}

// BacktestDayRequest carries one day's contexts and its recorded actuals.
// The caller owns fetching and rate limiting; by the time a request lands
// here everything is in memory.
type BacktestDayRequest struct {
	Date     string                    `json:"date" binding:"required"` // YYYY-MM-DD
	Players  []types.PlayerGameContext `json:"players" binding:"required"`
	Actuals  []types.ActualOutcome     `json:"actuals" binding:"required"`
	Variants []string                  `json:"variants"`
}

// RunDay evaluates one day under each requested variant.
func (h *BacktestHandler) RunDay(c *gin.Context) {
	var req BacktestDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	variantNames := req.Variants
	if len(variantNames) == 0 {
		variantNames = []string{string(scoring.VariantStatsWeighted)}
	}

	results := make([]types.BacktestResult, 0, len(variantNames))
	for _, name := range variantNames {
		variant, err := scoring.ParseVariant(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ranked, err := h.engine.RankAll(req.Players, variant)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := backtest.RunDay(date, ranked, req.Actuals, h.logger)
		logger.WithBacktestContext(req.Date, string(variant)).
			WithField("matched", result.MatchedPlayers).Debug("Backtest variant evaluated")
		results = append(results, result)
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// SummarizeRequest aggregates previously computed day results.
type SummarizeRequest struct {
	Results []types.BacktestResult `json:"results" binding:"required"`
}

// Summarize rolls day results up into a cross-day summary.
func (h *BacktestHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, backtest.Summarize(req.Results))
}
