package types

import "time"

// ActualOutcome is one player's realized box score for a completed game.
type ActualOutcome struct {
	PlayerID  string  `json:"player_id"`
	Name      string  `json:"name"`
	Points    float64 `json:"points"`
	Rebounds  float64 `json:"rebounds"`
	Assists   float64 `json:"assists"`
	Steals    float64 `json:"steals"`
	Blocks    float64 `json:"blocks"`
	Turnovers float64 `json:"turnovers"`
}

// PRA is the realized Points+Rebounds+Assists total.
func (o ActualOutcome) PRA() float64 {
	return o.Points + o.Rebounds + o.Assists
}

// RankedOutcome is an actual outcome placed in the day's realized ordering.
type RankedOutcome struct {
	ActualOutcome
	FantasyPoints float64 `json:"fantasy_points"`
	Rank          int     `json:"rank"` // 1-based
}

// BacktestResult is one evaluated day for one scoring variant. Constructed
// once from completed-game actuals and immutable thereafter.
type BacktestResult struct {
	Date    time.Time `json:"date"`
	Variant string    `json:"variant"`

	PredictedRanking []ScoredPlayer  `json:"predicted_ranking"`
	ActualRanking    []RankedOutcome `json:"actual_ranking"`

	WinnerCorrect    bool    `json:"winner_correct"`
	WinnerInTop5     bool    `json:"winner_in_top_5"`    // actual #1 inside predicted top 5
	WinnerActualRank int     `json:"winner_actual_rank"` // 0 = top pick unmatched
	Top3HitRate      float64 `json:"top3_hit_rate"`
	Top5HitRate      float64 `json:"top5_hit_rate"`
	Top10HitRate     float64 `json:"top10_hit_rate"`
	AvgRankError     float64 `json:"avg_rank_error"`
	MatchedPlayers   int     `json:"matched_players"`

	// Absolute gap between the top pick's projected PRA and its realized
	// PRA. Valid only when TopPickMatched is true.
	TopPickPRADiff float64 `json:"top_pick_pra_diff"`
	TopPickMatched bool    `json:"top_pick_matched"`
}

// VariantRecord tallies head-to-head day wins for one variant.
type VariantRecord struct {
	Variant string `json:"variant"`
	Wins    int    `json:"wins"`
}

// BacktestSummary aggregates per-day results across a date range.
type BacktestSummary struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      int       `json:"days"`

	WinnerHitRate    float64 `json:"winner_hit_rate"`
	MeanTop3HitRate  float64 `json:"mean_top3_hit_rate"`
	MeanTop5HitRate  float64 `json:"mean_top5_hit_rate"`
	MeanTop10HitRate float64 `json:"mean_top10_hit_rate"`
	MeanRankError    float64 `json:"mean_rank_error"`

	VariantRecords []VariantRecord `json:"variant_records,omitempty"`
	TiedDays       int             `json:"tied_days"`

	BestDay      time.Time `json:"best_day"`
	BestDayTop5  float64   `json:"best_day_top5"`
	WorstDay     time.Time `json:"worst_day"`
	WorstDayTop5 float64   `json:"worst_day_top5"`
}

// ComparisonSummary is a structured diff of two rankings over the same
// player set.
type ComparisonSummary struct {
	VariantA string `json:"variant_a"`
	VariantB string `json:"variant_b"`

	PlayersCompared int     `json:"players_compared"`
	RanksChanged    int     `json:"ranks_changed"`
	MeanAbsDelta    float64 `json:"mean_abs_delta"`
	Top5Overlap     int     `json:"top5_overlap"`

	BiggestRiser       string `json:"biggest_riser,omitempty"`
	BiggestRiserDelta  int    `json:"biggest_riser_delta,omitempty"`
	BiggestFaller      string `json:"biggest_faller,omitempty"`
	BiggestFallerDelta int    `json:"biggest_faller_delta,omitempty"`
}
