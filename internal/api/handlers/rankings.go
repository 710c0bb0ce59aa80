package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hooplytics/pra-engine/internal/ranking"
	"github.com/hooplytics/pra-engine/internal/scoring"
	"github.com/hooplytics/pra-engine/internal/types"
	"github.com/hooplytics/pra-engine/pkg/logger"
)

// RankingsHandler exposes the scoring engine over HTTP. Request bodies are
// fully-materialized player contexts; the handler is a field-for-field
// mapping around the pure core.
type RankingsHandler struct {
	engine *scoring.Engine
	logger *logrus.Logger
}

// NewRankingsHandler creates a rankings handler.
func NewRankingsHandler(engine *scoring.Engine, logger *logrus.Logger) *RankingsHandler {
	return &RankingsHandler{engine: engine, logger: logger}
}

// RankingsRequest is the rank-players request body.
type RankingsRequest struct {
	Players    []types.PlayerGameContext `json:"players" binding:"required"`
	Variant    string                    `json:"variant"`
	ExcludeOut bool                      `json:"exclude_out"`
}

// Rank scores and ranks the submitted players under one variant.
func (h *RankingsHandler) Rank(c *gin.Context) {
	var req RankingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	variant, err := scoring.ParseVariant(req.Variant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contexts := req.Players
	if req.ExcludeOut {
		contexts = make([]types.PlayerGameContext, 0, len(req.Players))
		for _, ctx := range req.Players {
			if scoring.ShouldExclude(ctx.InjuryStatus) {
				continue
			}
			contexts = append(contexts, ctx)
		}
	}

	ranked, err := h.engine.RankAll(contexts, variant)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.WithScoringContext(string(variant), len(ranked)).Info("Ranking request served")

	c.JSON(http.StatusOK, gin.H{
		"variant": variant,
		"players": ranked,
	})
}

// CompareRequest asks for a diff between two variants over one player set.
type CompareRequest struct {
	Players  []types.PlayerGameContext `json:"players" binding:"required"`
	VariantA string                    `json:"variant_a"`
	VariantB string                    `json:"variant_b"`
}

// Compare ranks the same players under two variants and diffs the results.
func (h *RankingsHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	variantA, err := scoring.ParseVariant(req.VariantA)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	variantB, err := scoring.ParseVariant(req.VariantB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// An omitted variant_b falls back to the counterpart philosophy so the
	// default request compares something meaningful. An explicit
	// self-comparison is a caller error.
	if variantB == variantA {
		if req.VariantB != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "variant_a and variant_b must differ"})
			return
		}
		variantB = scoring.VariantContextWeighted
	}

	rankedA, err := h.engine.RankAll(req.Players, variantA)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rankedB, err := h.engine.RankAll(req.Players, variantB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"variant_a": variantA,
		"variant_b": variantB,
		"players":   len(req.Players),
	}).Info("Variant comparison served")

	c.JSON(http.StatusOK, gin.H{
		"ranking_a":  rankedA,
		"ranking_b":  rankedB,
		"comparison": ranking.Compare(rankedA, rankedB),
	})
}
