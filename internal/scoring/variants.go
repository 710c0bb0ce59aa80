package scoring

import "fmt"

// Variant selects one scoring strategy. The source of truth for every
// variant's behavior is the weight registry below plus, for the ensemble,
// the winner-profile constants in sigmoid.go. One parameterized engine
// replaces what would otherwise be three near-duplicate scoring modules.
type Variant string

const (
	// VariantStatsWeighted emphasizes player-intrinsic signals: recent
	// form, ceiling, and volume carry ~75% of the composite.
	VariantStatsWeighted Variant = "stats_weighted"

	// VariantContextWeighted inverts the emphasis: matchup and game
	// environment carry ~75% of the composite.
	VariantContextWeighted Variant = "context_weighted"

	// VariantSigmoidEnsemble passes raw features through logistic
	// transforms calibrated against the historical winner profile and
	// outputs a bounded pseudo-probability (cap 0.35, reported x285).
	VariantSigmoidEnsemble Variant = "sigmoid_ensemble"
)

// Component names used as keys in ScoredPlayer.ComponentScores.
const (
	ComponentRecency     = "recency"
	ComponentCeiling     = "ceiling"
	ComponentVolume      = "volume"
	ComponentMatchup     = "matchup"
	ComponentEnvironment = "environment"
)

// WeightVector weights the five sub-scores of a weighted variant.
// The fields must sum to 1.0.
type WeightVector struct {
	Recency     float64
	Ceiling     float64
	Volume      float64
	Matchup     float64
	Environment float64
}

// Sum returns the total weight, used to assert the 1.0 invariant.
func (w WeightVector) Sum() float64 {
	return w.Recency + w.Ceiling + w.Volume + w.Matchup + w.Environment
}

// statsFirst reads stats-intrinsic signals before context.
func (w WeightVector) statsFirst() bool {
	return w.Recency+w.Ceiling+w.Volume >= w.Matchup+w.Environment
}

var weightRegistry = map[Variant]WeightVector{
	VariantStatsWeighted: {
		Recency:     0.30,
		Ceiling:     0.25,
		Volume:      0.20,
		Matchup:     0.15,
		Environment: 0.10,
	},
	VariantContextWeighted: {
		Recency:     0.10,
		Ceiling:     0.10,
		Volume:      0.05,
		Matchup:     0.40,
		Environment: 0.35,
	},
}

// projectionFloor is the guaranteed fraction of the recent average PRA a
// projection may never fall below, per variant. Heavy negative context can
// shrink a projection but never to an implausible number.
var projectionFloor = map[Variant]float64{
	VariantStatsWeighted:   0.85,
	VariantContextWeighted: 0.70,
	VariantSigmoidEnsemble: 0.75,
}

// Variants lists every supported variant in a stable order.
func Variants() []Variant {
	return []Variant{VariantStatsWeighted, VariantContextWeighted, VariantSigmoidEnsemble}
}

// ParseVariant validates a caller-supplied variant name.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantStatsWeighted, VariantContextWeighted, VariantSigmoidEnsemble:
		return Variant(s), nil
	case "":
		return VariantStatsWeighted, nil
	default:
		return "", fmt.Errorf("unknown scoring variant %q", s)
	}
}

// Weights returns the weight vector for a weighted variant. The ensemble
// variant has no sub-score weights; callers get the zero vector and false.
func Weights(v Variant) (WeightVector, bool) {
	w, ok := weightRegistry[v]
	return w, ok
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
