// Package scoring turns normalized player/game records into scored,
// rankable predictions of the night's PRA leader. Every function is a pure
// transform: contexts pass by value, outputs are fresh records, and nothing
// here performs I/O.
package scoring

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/hooplytics/pra-engine/internal/teamdata"
	"github.com/hooplytics/pra-engine/internal/types"
)

const maxKeyFactors = 4

// Engine scores players against the injected team tables.
type Engine struct {
	teams  *teamdata.Table
	logger *logrus.Logger
}

// NewEngine creates a scoring engine.
func NewEngine(teams *teamdata.Table, logger *logrus.Logger) *Engine {
	return &Engine{teams: teams, logger: logger}
}

// Score evaluates one player under one variant. Malformed or missing stats
// degrade to documented defaults; the only error is an unknown variant.
func (e *Engine) Score(ctx types.PlayerGameContext, variant Variant) (types.ScoredPlayer, error) {
	parsed, err := ParseVariant(string(variant))
	if err != nil {
		return types.ScoredPlayer{}, err
	}
	variant = parsed

	rs := ctx.Recent()
	subs := computeSubScores(ctx, rs, e.teams)

	var composite float64
	var factors []string
	if variant == VariantSigmoidEnsemble {
		prob, interactionFactors := ensembleProbability(ctx, rs, e.teams)
		composite = prob * ensembleReportScale
		factors = assembleFactors(subs.statFactors, subs.contextFactors, interactionFactors)
	} else {
		weights, _ := Weights(variant)
		composite = weights.Recency*subs.recency +
			weights.Ceiling*subs.ceiling +
			weights.Volume*subs.volume +
			weights.Matchup*subs.matchup +
			weights.Environment*subs.environment
		if weights.statsFirst() {
			factors = assembleFactors(subs.statFactors, subs.contextFactors, nil)
		} else {
			factors = assembleFactors(subs.contextFactors, subs.statFactors, nil)
		}
	}

	projected, ceiling := e.project(variant, composite, rs)

	penalty, injuryFactor := injuryPenalty(ctx.InjuryStatus)
	composite += penalty
	if injuryFactor != "" {
		factors = append([]string{injuryFactor}, factors...)
		if len(factors) > maxKeyFactors {
			factors = factors[:maxKeyFactors]
		}
	}

	scored := types.ScoredPlayer{
		PlayerGameContext: ctx,
		Variant:           string(variant),
		CompositeScore:    composite,
		ProjectedPRA:      projected,
		CeilingPRA:        ceiling,
		ComponentScores:   subs.components(),
		KeyFactors:        factors,
		Confidence:        e.confidence(variant, ctx, rs, subs),
	}

	if e.logger != nil && e.logger.IsLevelEnabled(logrus.DebugLevel) {
		e.logger.WithFields(logrus.Fields{
			"player":    ctx.PlayerID,
			"variant":   variant,
			"composite": composite,
			"projected": projected,
		}).Debug("Player scored")
	}
	return scored, nil
}

// RankAll scores every context and returns them sorted by composite score
// descending. The sort is stable: equal scores keep input order.
func (e *Engine) RankAll(contexts []types.PlayerGameContext, variant Variant) ([]types.ScoredPlayer, error) {
	scored := make([]types.ScoredPlayer, 0, len(contexts))
	for _, ctx := range contexts {
		sp, err := e.Score(ctx, variant)
		if err != nil {
			return nil, err
		}
		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].CompositeScore > scored[j].CompositeScore
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored, nil
}

// project derives the projected and ceiling PRA. The projection scales the
// recent average by the composite but never drops below the variant's
// floor fraction of that average, and the ceiling never drops below the
// projection.
func (e *Engine) project(variant Variant, composite float64, rs types.RecentStats) (projected, ceiling float64) {
	floor := projectionFloor[variant]
	normalized := clamp(composite, 0, 100) / 100

	mult := math.Max(floor, 0.70+0.45*normalized)
	projected = rs.AvgPRA * mult

	ceiling = math.Max(projected*1.12, rs.AvgPRA+1.5*rs.StdDevPRA)
	if ceiling < projected {
		ceiling = projected
	}
	return projected, ceiling
}

// confidence labels the prediction. HIGH needs consistency and sample size
// (context-first variants additionally demand a clear favorable context);
// LOW flags thin samples, volatile windows, or blowout spreads.
func (e *Engine) confidence(variant Variant, ctx types.PlayerGameContext, rs types.RecentStats, subs subScores) types.Confidence {
	blowout := ctx.Spread != nil && math.Abs(*ctx.Spread) >= blowoutSpread
	bigLine := ctx.Spread != nil && math.Abs(*ctx.Spread) >= bigSpread

	if ctx.GamesPlayed < 10 || rs.StdDevPRA > 12 || blowout {
		return types.ConfidenceLow
	}

	switch variant {
	case VariantContextWeighted:
		if ctx.GamesPlayed >= 15 && subs.matchup >= 60 && subs.environment >= 55 && !bigLine {
			return types.ConfidenceHigh
		}
	default:
		if ctx.GamesPlayed >= 15 && rs.StdDevPRA <= 5 {
			return types.ConfidenceHigh
		}
	}
	return types.ConfidenceMedium
}

// assembleFactors merges factor groups in philosophy order and truncates.
func assembleFactors(primary, secondary, extra []string) []string {
	factors := make([]string, 0, maxKeyFactors)
	for _, group := range [][]string{extra, primary, secondary} {
		for _, f := range group {
			if len(factors) == maxKeyFactors {
				return factors
			}
			factors = append(factors, f)
		}
	}
	return factors
}
