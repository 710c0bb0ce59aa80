package scoring

import (
	"fmt"

	"github.com/hooplytics/pra-engine/internal/types"
)

// Injury adjustments are additive penalties layered on top of the weighted
// composite, not part of the weight vector. OUT and DOUBTFUL are sized so
// the player sorts below any healthy score in any variant.
const (
	penaltyProbable     = -3.0
	penaltyQuestionable = -10.0
	penaltyDoubtful     = -400.0
	penaltyOut          = -500.0
)

// injuryPenalty returns the additive adjustment and an optional factor
// string. Unknown statuses are treated as healthy rather than penalized.
func injuryPenalty(status types.InjuryStatus) (float64, string) {
	switch status {
	case types.InjuryProbable:
		return penaltyProbable, ""
	case types.InjuryQuestionable:
		return penaltyQuestionable, fmt.Sprintf("Injury risk (%s)", status)
	case types.InjuryDoubtful:
		return penaltyDoubtful, fmt.Sprintf("Unlikely to play (%s)", status)
	case types.InjuryOut:
		return penaltyOut, "Ruled out"
	default:
		return 0, ""
	}
}

// ShouldExclude reports whether a player is normally dropped from rankings
// outright. The decision to apply it belongs to the caller; the scorer
// itself always produces a score.
func ShouldExclude(status types.InjuryStatus) bool {
	return status == types.InjuryOut || status == types.InjuryDoubtful
}
