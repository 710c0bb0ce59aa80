package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hooplytics/pra-engine/internal/optimizer"
	"github.com/hooplytics/pra-engine/internal/scoring"
	"github.com/hooplytics/pra-engine/internal/types"
	"github.com/hooplytics/pra-engine/pkg/config"
	"github.com/hooplytics/pra-engine/pkg/logger"
)

// LineupsHandler builds lineups from scored players.
type LineupsHandler struct {
	engine *scoring.Engine
	cfg    *config.Config
	logger *logrus.Logger
}

// NewLineupsHandler creates a lineups handler.
func NewLineupsHandler(engine *scoring.Engine, cfg *config.Config, logger *logrus.Logger) *LineupsHandler {
	return &LineupsHandler{engine: engine, cfg: cfg, logger: logger}
}

// LineupsRequest carries player contexts with optional platform salaries.
// Players without a salary get the optimizer's placeholder estimate.
type LineupsRequest struct {
	Players  []types.PlayerGameContext `json:"players" binding:"required"`
	Salaries map[string]int            `json:"salaries"`
	Count    int                       `json:"count"`
	Variant  string                    `json:"variant"`
	Settings *types.LineupSettings     `json:"settings"`
}

// Build scores the players and constructs lineups.
func (h *LineupsHandler) Build(c *gin.Context) {
	var req LineupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	variant, err := scoring.ParseVariant(req.Variant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := h.defaultSettings(string(variant))
	if req.Settings != nil {
		settings = *req.Settings
		settings.Variant = string(variant)
	}
	if settings.RosterSize != len(settings.Positions) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "roster_size must equal the number of position slots",
		})
		return
	}

	ranked, err := h.engine.RankAll(req.Players, variant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	salaried := make([]types.SalariedPlayer, 0, len(ranked))
	for _, p := range ranked {
		if scoring.ShouldExclude(p.InjuryStatus) {
			continue
		}
		salary, ok := req.Salaries[p.PlayerID]
		if !ok {
			salary = optimizer.EstimateSalary(p.CompositeScore)
		}
		salaried = append(salaried, types.SalariedPlayer{ScoredPlayer: p, Salary: salary})
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}
	if count > h.cfg.MaxLineups {
		count = h.cfg.MaxLineups
	}

	lineups := optimizer.GenerateLineups(salaried, count, settings, h.logger)
	violations := make(map[string][]string, len(lineups))
	for _, l := range lineups {
		v := optimizer.ValidateLineup(l, settings)
		violations[l.ID] = v
		if len(v) > 0 {
			logger.WithLineupContext(l.ID, settings.Variant).
				WithField("violations", len(v)).Warn("Lineup violates settings")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"lineups":    lineups,
		"violations": violations,
		"settings":   settings,
	})
}

func (h *LineupsHandler) defaultSettings(variant string) types.LineupSettings {
	settings := optimizer.DefaultSettings(variant)
	settings.SalaryCap = h.cfg.SalaryCap
	settings.Positions = h.cfg.RosterPositions
	settings.RosterSize = len(h.cfg.RosterPositions)
	settings.MaxPlayersPerTeam = h.cfg.MaxPlayersPerTeam
	return settings
}
