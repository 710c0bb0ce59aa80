// Package backtest cross-validates predicted rankings against recorded
// box-score outcomes. It only ever replays actuals handed to it; synthetic
// outcome generation lives in the fixtures package and never feeds the
// engine outside of tests and demos.
package backtest

import (
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/hooplytics/pra-engine/internal/types"
)

// Fantasy scoring weights. The outcome ranking is only meaningful if this
// formula matches the contest's exactly.
const (
	fpPoints    = 1.0
	fpRebounds  = 1.2
	fpAssists   = 1.5
	fpSteals    = 3.0
	fpBlocks    = 3.0
	fpTurnovers = -1.0
)

// Hit windows are asymmetric on purpose: a predicted top-3 player counts
// as a hit anywhere in the actual top 5, predicted top-5 in the actual top
// 10, predicted top-10 in the actual top 15. Nightly PRA outcomes are
// noisy enough that demanding symmetric windows punishes good rankings.
const (
	top3Window  = 5
	top5Window  = 10
	top10Window = 15
)

// Variant head-to-head draws within this rank-error band are ties.
const rankErrorTieBand = 1.0

// FantasyPoints applies the fixed scoring formula to a box score.
func FantasyPoints(o types.ActualOutcome) float64 {
	return fpPoints*o.Points +
		fpRebounds*o.Rebounds +
		fpAssists*o.Assists +
		fpSteals*o.Steals +
		fpBlocks*o.Blocks +
		fpTurnovers*o.Turnovers
}

// RankOutcomes orders actual outcomes by fantasy points descending.
func RankOutcomes(outcomes []types.ActualOutcome) []types.RankedOutcome {
	ranked := make([]types.RankedOutcome, len(outcomes))
	for i, o := range outcomes {
		ranked[i] = types.RankedOutcome{ActualOutcome: o, FantasyPoints: FantasyPoints(o)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FantasyPoints > ranked[j].FantasyPoints
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// RunDay evaluates one day's predicted ranking against that day's actuals.
// Predicted players with no actual-outcome match are excluded from the
// rank-error and hit metrics rather than failing the day.
func RunDay(date time.Time, predicted []types.ScoredPlayer, actuals []types.ActualOutcome, logger *logrus.Logger) types.BacktestResult {
	result := types.BacktestResult{Date: date}
	if len(predicted) > 0 {
		result.Variant = predicted[0].Variant
	}
	result.PredictedRanking = predicted
	result.ActualRanking = RankOutcomes(actuals)

	actualRanks := matchActualRanks(predicted, result.ActualRanking)

	var totalError float64
	for predictedRank, p := range predicted {
		actualRank, ok := actualRanks[p.PlayerID]
		if !ok {
			continue
		}
		result.MatchedPlayers++
		totalError += math.Abs(float64(predictedRank + 1 - actualRank))
	}
	if result.MatchedPlayers > 0 {
		result.AvgRankError = totalError / float64(result.MatchedPlayers)
	}

	if len(predicted) > 0 {
		topPick := predicted[0]
		if actualRank, ok := actualRanks[topPick.PlayerID]; ok {
			result.WinnerActualRank = actualRank
			result.WinnerCorrect = actualRank == 1
			result.TopPickMatched = true
			result.TopPickPRADiff = math.Abs(topPick.ProjectedPRA - actualPRA(topPick.PlayerID, actualRanks, result.ActualRanking))
		}
	}

	// Did the actual winner at least appear in the predicted top 5?
	for i := 0; i < len(predicted) && i < 5; i++ {
		if rank, ok := actualRanks[predicted[i].PlayerID]; ok && rank == 1 {
			result.WinnerInTop5 = true
			break
		}
	}

	result.Top3HitRate = hitRate(predicted, actualRanks, 3, top3Window)
	result.Top5HitRate = hitRate(predicted, actualRanks, 5, top5Window)
	result.Top10HitRate = hitRate(predicted, actualRanks, 10, top10Window)

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"date":           date.Format("2006-01-02"),
			"variant":        result.Variant,
			"matched":        result.MatchedPlayers,
			"winner_correct": result.WinnerCorrect,
			"avg_rank_error": result.AvgRankError,
		}).Info("Backtest day evaluated")
	}
	return result
}

// matchActualRanks maps predicted player IDs to actual ranks, matching by
// identifier first and falling back to normalized-name reconciliation for
// cross-source feeds with mismatched IDs.
func matchActualRanks(predicted []types.ScoredPlayer, actual []types.RankedOutcome) map[string]int {
	byID := make(map[string]int, len(actual))
	for _, o := range actual {
		byID[o.PlayerID] = o.Rank
	}

	ranks := make(map[string]int, len(predicted))
	for _, p := range predicted {
		if rank, ok := byID[p.PlayerID]; ok {
			ranks[p.PlayerID] = rank
			continue
		}
		for _, o := range actual {
			if namesMatch(p.Name, o.Name) {
				ranks[p.PlayerID] = o.Rank
				break
			}
		}
	}
	return ranks
}

func actualPRA(playerID string, actualRanks map[string]int, actual []types.RankedOutcome) float64 {
	rank, ok := actualRanks[playerID]
	if !ok {
		return 0
	}
	for _, o := range actual {
		if o.Rank == rank {
			return o.PRA()
		}
	}
	return 0
}

// hitRate counts predicted top-K players landing within the actual window.
func hitRate(predicted []types.ScoredPlayer, actualRanks map[string]int, predictedTop, actualWithin int) float64 {
	if len(predicted) == 0 {
		return 0
	}
	n := predictedTop
	if len(predicted) < n {
		n = len(predicted)
	}

	hits := 0
	for i := 0; i < n; i++ {
		if rank, ok := actualRanks[predicted[i].PlayerID]; ok && rank <= actualWithin {
			hits++
		}
	}
	return float64(hits) / float64(n)
}

// CompareDay declares the variant with the lower average rank error the
// day's winner. Errors within the tie band are a draw.
func CompareDay(a, b types.BacktestResult) (winner string, tie bool) {
	diff := a.AvgRankError - b.AvgRankError
	if math.Abs(diff) <= rankErrorTieBand {
		return "", true
	}
	if diff < 0 {
		return a.Variant, false
	}
	return b.Variant, false
}

// Summarize aggregates per-day results. When results span multiple
// variants for the same dates, head-to-head day wins are tallied per
// variant; otherwise VariantRecords carries a single entry.
func Summarize(results []types.BacktestResult) types.BacktestSummary {
	summary := types.BacktestSummary{}
	if len(results) == 0 {
		return summary
	}

	byDate := make(map[time.Time][]types.BacktestResult)
	var top3s, top5s, top10s, rankErrors []float64
	winners := 0

	summary.StartDate = results[0].Date
	summary.EndDate = results[0].Date
	bestIdx, worstIdx := 0, 0

	for i, r := range results {
		if r.Date.Before(summary.StartDate) {
			summary.StartDate = r.Date
		}
		if r.Date.After(summary.EndDate) {
			summary.EndDate = r.Date
		}
		byDate[r.Date] = append(byDate[r.Date], r)

		top3s = append(top3s, r.Top3HitRate)
		top5s = append(top5s, r.Top5HitRate)
		top10s = append(top10s, r.Top10HitRate)
		rankErrors = append(rankErrors, r.AvgRankError)
		if r.WinnerCorrect {
			winners++
		}
		if r.Top5HitRate > results[bestIdx].Top5HitRate {
			bestIdx = i
		}
		if r.Top5HitRate < results[worstIdx].Top5HitRate {
			worstIdx = i
		}
	}

	summary.Days = len(byDate)
	summary.WinnerHitRate = float64(winners) / float64(len(results))
	summary.MeanTop3HitRate = stat.Mean(top3s, nil)
	summary.MeanTop5HitRate = stat.Mean(top5s, nil)
	summary.MeanTop10HitRate = stat.Mean(top10s, nil)
	summary.MeanRankError = stat.Mean(rankErrors, nil)
	summary.BestDay = results[bestIdx].Date
	summary.BestDayTop5 = results[bestIdx].Top5HitRate
	summary.WorstDay = results[worstIdx].Date
	summary.WorstDayTop5 = results[worstIdx].Top5HitRate

	// Head-to-head tally for days where multiple variants were evaluated.
	wins := make(map[string]int)
	variants := make(map[string]struct{})
	for _, dayResults := range byDate {
		for _, r := range dayResults {
			variants[r.Variant] = struct{}{}
		}
		if len(dayResults) < 2 {
			continue
		}
		for i := 0; i < len(dayResults); i++ {
			for j := i + 1; j < len(dayResults); j++ {
				winner, tie := CompareDay(dayResults[i], dayResults[j])
				if tie {
					summary.TiedDays++
				} else {
					wins[winner]++
				}
			}
		}
	}

	names := make([]string, 0, len(variants))
	for v := range variants {
		names = append(names, v)
	}
	sort.Strings(names)
	for _, v := range names {
		summary.VariantRecords = append(summary.VariantRecords, types.VariantRecord{Variant: v, Wins: wins[v]})
	}
	return summary
}
