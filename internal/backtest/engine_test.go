package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplytics/pra-engine/internal/types"
)

func predictedPlayer(id, name string, projectedPRA float64) types.ScoredPlayer {
	return types.ScoredPlayer{
		PlayerGameContext: types.PlayerGameContext{PlayerID: id, Name: name},
		Variant:           "stats_weighted",
		ProjectedPRA:      projectedPRA,
	}
}

func outcome(id, name string, points float64) types.ActualOutcome {
	return types.ActualOutcome{PlayerID: id, Name: name, Points: points}
}

var testDate = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

func TestFantasyPoints(t *testing.T) {
	o := types.ActualOutcome{
		Points:    30,
		Rebounds:  10,
		Assists:   8,
		Steals:    2,
		Blocks:    1,
		Turnovers: 4,
	}
	// 30 + 12 + 12 + 6 + 3 - 4
	assert.InDelta(t, 59.0, FantasyPoints(o), 1e-9)
	assert.InDelta(t, 48.0, o.PRA(), 1e-9)
}

func TestRankOutcomes_OrderedByFantasyPoints(t *testing.T) {
	ranked := RankOutcomes([]types.ActualOutcome{
		outcome("a", "A", 20),
		outcome("b", "B", 45),
		outcome("c", "C", 31),
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "b", ranked[0].PlayerID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "c", ranked[1].PlayerID)
	assert.Equal(t, "a", ranked[2].PlayerID)
}

func TestRunDay_WinnerPredictedFourth(t *testing.T) {
	// The actual top performer sits fourth in the predicted ranking.
	predicted := []types.ScoredPlayer{
		predictedPlayer("p1", "One", 50),
		predictedPlayer("p2", "Two", 48),
		predictedPlayer("p3", "Three", 46),
		predictedPlayer("p4", "Four", 44),
		predictedPlayer("p5", "Five", 42),
	}
	actuals := []types.ActualOutcome{
		outcome("p4", "Four", 60),
		outcome("p1", "One", 50),
		outcome("p2", "Two", 45),
		outcome("p3", "Three", 40),
		outcome("p5", "Five", 35),
	}

	result := RunDay(testDate, predicted, actuals, nil)

	assert.False(t, result.WinnerCorrect)
	assert.True(t, result.WinnerInTop5, "the actual winner was predicted fourth, inside the top 5")
	assert.Equal(t, 2, result.WinnerActualRank, "top pick One finished second")
	assert.Equal(t, 5, result.MatchedPlayers)

	// Rank errors: p1 |1-2|=1, p2 |2-3|=1, p3 |3-4|=1, p4 |4-1|=3, p5 0.
	assert.InDelta(t, 6.0/5.0, result.AvgRankError, 1e-9)

	assert.True(t, result.TopPickMatched)
	assert.InDelta(t, 0.0, result.TopPickPRADiff, 1e-9) // projected 50, realized 50 points
}

func TestRunDay_AsymmetricHitWindows(t *testing.T) {
	predicted := make([]types.ScoredPlayer, 12)
	actuals := make([]types.ActualOutcome, 12)
	for i := range predicted {
		id := string(rune('a' + i))
		predicted[i] = predictedPlayer(id, "Player "+id, 40)
		// Reverse the ordering so predicted rank i+1 lands at actual rank
		// 12-i.
		actuals[i] = outcome(id, "Player "+id, float64(10+i))
	}

	result := RunDay(testDate, predicted, actuals, nil)

	// Predicted top 3 land at actual ranks 12, 11, 10: no top-3 hits.
	assert.Zero(t, result.Top3HitRate)
	// Predicted top 5 land at ranks 12..8: three inside the top-10 window.
	assert.InDelta(t, 3.0/5.0, result.Top5HitRate, 1e-9)
	// Predicted top 10 land at ranks 12..3, all inside the top-15 window.
	assert.InDelta(t, 1.0, result.Top10HitRate, 1e-9)
}

func TestRunDay_UnmatchedPlayersExcludedNotFatal(t *testing.T) {
	predicted := []types.ScoredPlayer{
		predictedPlayer("p1", "One", 50),
		predictedPlayer("ghost", "Nobody Matches", 48),
		predictedPlayer("p3", "Three", 45),
	}
	actuals := []types.ActualOutcome{
		outcome("p1", "One", 50),
		outcome("p3", "Three", 40),
	}

	result := RunDay(testDate, predicted, actuals, nil)

	assert.Equal(t, 2, result.MatchedPlayers)
	assert.True(t, result.WinnerCorrect)
	// p1 |1-1|=0, p3 |3-2|=1.
	assert.InDelta(t, 0.5, result.AvgRankError, 1e-9)
}

func TestRunDay_NameFallbackMatching(t *testing.T) {
	// IDs disagree across sources; diacritic-insensitive names reconcile.
	predicted := []types.ScoredPlayer{
		predictedPlayer("nba-77", "Luka Dončić", 55),
	}
	actuals := []types.ActualOutcome{
		outcome("bref-luka01", "luka doncic", 58),
	}

	result := RunDay(testDate, predicted, actuals, nil)

	assert.Equal(t, 1, result.MatchedPlayers)
	assert.True(t, result.WinnerCorrect)
	assert.True(t, result.TopPickMatched)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "lukadoncic", normalizeName("Luka Dončić"))
	assert.Equal(t, "jarenjacksonjr", normalizeName("Jaren Jackson Jr."))
	assert.Equal(t, "", normalizeName("23"))
}

func TestNamesMatch(t *testing.T) {
	assert.True(t, namesMatch("Luka Dončić", "luka doncic"))
	assert.True(t, namesMatch("Nikola Jokić", "Nikola Jokic"))
	assert.False(t, namesMatch("Jayson Tatum", "Jaylen Brown"))
	assert.False(t, namesMatch("", "Someone"))
}

func TestCompareDay(t *testing.T) {
	a := types.BacktestResult{Variant: "stats_weighted", AvgRankError: 2.0}
	b := types.BacktestResult{Variant: "context_weighted", AvgRankError: 4.5}

	winner, tie := CompareDay(a, b)
	assert.False(t, tie)
	assert.Equal(t, "stats_weighted", winner)

	// Within the one-position band it is a draw.
	c := types.BacktestResult{Variant: "context_weighted", AvgRankError: 2.8}
	_, tie = CompareDay(a, c)
	assert.True(t, tie)
}

func TestSummarize_AggregatesAcrossDays(t *testing.T) {
	day1 := testDate
	day2 := testDate.AddDate(0, 0, 1)
	day3 := testDate.AddDate(0, 0, 2)

	results := []types.BacktestResult{
		{Date: day1, Variant: "stats_weighted", Top3HitRate: 0.33, Top5HitRate: 0.8, Top10HitRate: 0.9, AvgRankError: 2.0, WinnerCorrect: true},
		{Date: day2, Variant: "stats_weighted", Top3HitRate: 0.66, Top5HitRate: 0.4, Top10HitRate: 0.7, AvgRankError: 3.5},
		{Date: day3, Variant: "stats_weighted", Top3HitRate: 1.0, Top5HitRate: 0.6, Top10HitRate: 0.8, AvgRankError: 2.5, WinnerCorrect: true},
	}

	summary := Summarize(results)

	assert.Equal(t, day1, summary.StartDate)
	assert.Equal(t, day3, summary.EndDate)
	assert.Equal(t, 3, summary.Days)
	assert.InDelta(t, 2.0/3.0, summary.WinnerHitRate, 1e-9)
	assert.InDelta(t, 0.6, summary.MeanTop5HitRate, 1e-9)
	assert.Equal(t, day1, summary.BestDay)
	assert.InDelta(t, 0.8, summary.BestDayTop5, 1e-9)
	assert.Equal(t, day2, summary.WorstDay)
	assert.InDelta(t, 0.4, summary.WorstDayTop5, 1e-9)
}

func TestSummarize_HeadToHeadRecords(t *testing.T) {
	day1 := testDate
	day2 := testDate.AddDate(0, 0, 1)

	results := []types.BacktestResult{
		{Date: day1, Variant: "stats_weighted", AvgRankError: 2.0},
		{Date: day1, Variant: "context_weighted", AvgRankError: 4.0},
		{Date: day2, Variant: "stats_weighted", AvgRankError: 3.0},
		{Date: day2, Variant: "context_weighted", AvgRankError: 3.4},
	}

	summary := Summarize(results)

	assert.Equal(t, 2, summary.Days)
	assert.Equal(t, 1, summary.TiedDays, "day two is inside the tie band")
	require.Len(t, summary.VariantRecords, 2)
	// Records sort by variant name.
	assert.Equal(t, "context_weighted", summary.VariantRecords[0].Variant)
	assert.Zero(t, summary.VariantRecords[0].Wins)
	assert.Equal(t, "stats_weighted", summary.VariantRecords[1].Variant)
	assert.Equal(t, 1, summary.VariantRecords[1].Wins)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.Days)
}
