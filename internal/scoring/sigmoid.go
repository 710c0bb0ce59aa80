package scoring

import (
	"math"

	"github.com/hooplytics/pra-engine/internal/teamdata"
	"github.com/hooplytics/pra-engine/internal/types"
)

// The ensemble variant models "probability of leading the night's PRA race"
// directly. Every raw feature passes through a logistic transform whose
// midpoint and steepness come from the observed winner profile: across
// recent seasons the nightly PRA leader averaged ~52 PRA with a ~30% usage
// rate, ~36 minutes, and a triple-double roughly one night in four. The
// output is capped well below 1.0 because many players compete every night.
const (
	ensembleScale = 0.40
	ensembleCap   = 0.35

	// Composite reporting scale: cap x 285 lands just under 100, keeping
	// the ensemble comparable with the 0-100 weighted variants.
	ensembleReportScale = 285.0
)

// sigmoidFeature is one logistic term of the ensemble.
type sigmoidFeature struct {
	name     string
	midpoint float64
	k        float64 // steepness
	weight   float64
}

// Winner-profile calibration. Weights sum to 1.0.
var ensembleFeatures = []sigmoidFeature{
	{name: "recent_avg_pra", midpoint: 42.0, k: 0.15, weight: 0.22},
	{name: "window_max_pra", midpoint: 55.0, k: 0.12, weight: 0.13},
	{name: "usage_rate", midpoint: 28.0, k: 0.35, weight: 0.15},
	{name: "minutes", midpoint: 34.0, k: 0.40, weight: 0.12},
	{name: "opp_def_rating", midpoint: 112.0, k: 0.30, weight: 0.10},
	{name: "opp_pace", midpoint: 100.0, k: 0.25, weight: 0.07},
	{name: "over_under", midpoint: 226.0, k: 0.08, weight: 0.08},
	{name: "spread_closeness", midpoint: -7.5, k: 0.30, weight: 0.08},
	{name: "triple_doubles", midpoint: 2.5, k: 0.80, weight: 0.05},
}

func logistic(x, midpoint, k float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*(x-midpoint)))
}

// ensembleProbability computes the capped pseudo-probability and the factor
// strings for interaction terms that fired.
func ensembleProbability(ctx types.PlayerGameContext, rs types.RecentStats, teams *teamdata.Table) (float64, []string) {
	opponent := teams.Team(ctx.OpponentAbbrev)
	drtg := ctx.OpponentDefRating
	if drtg <= 0 {
		drtg = opponent.DefRating
	}
	pace := ctx.OpponentPace
	if pace <= 0 {
		pace = opponent.Pace
	}

	raw := 0.0
	for _, f := range ensembleFeatures {
		var v float64
		switch f.name {
		case "recent_avg_pra":
			v = rs.AvgPRA
		case "window_max_pra":
			v = rs.MaxPRA
		case "usage_rate":
			v = ctx.EffectiveUsage()
		case "minutes":
			v = ctx.EffectiveMinutes()
		case "opp_def_rating":
			v = drtg
		case "opp_pace":
			v = pace
		case "over_under":
			// No line posted: neutral 0.5 contribution.
			if ctx.OverUnder == nil {
				raw += f.weight * 0.5
				continue
			}
			v = *ctx.OverUnder
		case "spread_closeness":
			if ctx.Spread == nil {
				raw += f.weight * 0.5
				continue
			}
			v = -math.Abs(*ctx.Spread)
		case "triple_doubles":
			v = float64(ctx.TripleDoubleCount)
		}
		raw += f.weight * logistic(v, f.midpoint, f.k)
	}

	// Interaction bonuses: co-occurring elite signals are worth more than
	// their marginal logistic contributions.
	var factors []string
	if ctx.EffectiveUsage() >= eliteUsageRate && ctx.EffectiveMinutes() >= eliteMinutes {
		raw += 0.04
		factors = append(factors, "Elite usage-minutes combination")
	}
	if rs.AvgPRA >= 50 && ctx.TripleDoubleCount >= 3 {
		raw += 0.03
		factors = append(factors, "Triple-double upside")
	}
	if ctx.IsHome && ctx.OverUnder != nil && *ctx.OverUnder >= highTotal {
		raw += 0.01
	}

	prob := math.Min(raw*ensembleScale, ensembleCap)
	if prob < 0 {
		prob = 0
	}
	return prob, factors
}

// ensembleWeightSum exposes the feature weight total to tests.
func ensembleWeightSum() float64 {
	sum := 0.0
	for _, f := range ensembleFeatures {
		sum += f.weight
	}
	return sum
}
