// Package ranking compares the orderings produced by competing scoring
// variants. All comparison is by player identifier; name matching is
// reserved for cross-source reconciliation in the backtest engine and never
// used between two rankings derived from the same input set.
package ranking

import (
	"math"

	"github.com/hooplytics/pra-engine/internal/types"
)

const topOverlapN = 5

// Compare diffs two rankings of the same player set. Players missing from
// either side are skipped rather than treated as movement.
func Compare(a, b []types.ScoredPlayer) types.ComparisonSummary {
	summary := types.ComparisonSummary{}
	if len(a) > 0 {
		summary.VariantA = a[0].Variant
	}
	if len(b) > 0 {
		summary.VariantB = b[0].Variant
	}

	ranksB := make(map[string]int, len(b))
	for _, p := range b {
		ranksB[p.PlayerID] = p.Rank
	}

	var totalAbsDelta float64
	for _, p := range a {
		rankB, ok := ranksB[p.PlayerID]
		if !ok {
			continue
		}
		summary.PlayersCompared++

		delta := p.Rank - rankB
		if delta != 0 {
			summary.RanksChanged++
		}
		totalAbsDelta += math.Abs(float64(delta))

		// A positive delta means the player ranks better under B: rank_in_A
		// minus rank_in_B, so B's riser carries the biggest positive delta.
		if delta > summary.BiggestRiserDelta {
			summary.BiggestRiserDelta = delta
			summary.BiggestRiser = p.Name
		}
		if delta < summary.BiggestFallerDelta {
			summary.BiggestFallerDelta = delta
			summary.BiggestFaller = p.Name
		}
	}

	if summary.PlayersCompared > 0 {
		summary.MeanAbsDelta = totalAbsDelta / float64(summary.PlayersCompared)
	}
	summary.Top5Overlap = topOverlap(a, b, topOverlapN)
	return summary
}

// topOverlap counts the intersection of the two top-N sets by player ID.
func topOverlap(a, b []types.ScoredPlayer, n int) int {
	topA := make(map[string]struct{}, n)
	for i := 0; i < len(a) && i < n; i++ {
		topA[a[i].PlayerID] = struct{}{}
	}

	overlap := 0
	for i := 0; i < len(b) && i < n; i++ {
		if _, ok := topA[b[i].PlayerID]; ok {
			overlap++
		}
	}
	return overlap
}
