package types

import "gonum.org/v1/gonum/stat"

// Position labels follow DraftKings NBA classic conventions. A player's
// Position is one of the concrete labels (PG, SG, SF, PF, C); the flex
// labels (G, F, UTIL) appear in roster templates and occasionally in
// upstream feeds for combo players.
const (
	PositionPG   = "PG"
	PositionSG   = "SG"
	PositionSF   = "SF"
	PositionPF   = "PF"
	PositionC    = "C"
	PositionG    = "G"
	PositionF    = "F"
	PositionUTIL = "UTIL"
)

// InjuryStatus mirrors the standard NBA injury report designations.
type InjuryStatus string

const (
	InjuryHealthy      InjuryStatus = "HEALTHY"
	InjuryProbable     InjuryStatus = "PROBABLE"
	InjuryQuestionable InjuryStatus = "QUESTIONABLE"
	InjuryDoubtful     InjuryStatus = "DOUBTFUL"
	InjuryOut          InjuryStatus = "OUT"
)

// Confidence labels a scored projection.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// League-average fallbacks substituted for missing inputs so arithmetic
// never sees a zero-valued hole in the data.
const (
	LeagueAvgUsageRate = 20.0
	LeagueAvgMinutes   = 28.0
	LeagueAvgDefRating = 112.0
	LeagueAvgPace      = 100.0
)

// PlayerGameContext is the normalized per-player, per-game input record the
// scoring engine consumes. It is assembled by the data-fetch boundary and
// never mutated after construction.
//
// LastNPRA is ordered oldest first: index 0 is the oldest game in the
// window and the final element is the most recent game.
type PlayerGameContext struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`

	// Season baseline.
	GamesPlayed  int     `json:"games_played"`
	PPG          float64 `json:"ppg"`
	RPG          float64 `json:"rpg"`
	APG          float64 `json:"apg"`
	MPG          float64 `json:"mpg"`
	FieldGoalPct float64 `json:"field_goal_pct"` // 0-1 scale

	// Recent form, oldest first, up to 10 entries.
	LastNPRA []float64 `json:"last_n_pra"`

	// Usage profile.
	UsageRate         float64 `json:"usage_rate"` // percent, typical 15-35
	TripleDoubleCount int     `json:"triple_double_count"`

	// Game context. Spread is negative when the player's team is favored.
	OpponentAbbrev    string   `json:"opponent_abbrev"`
	OpponentDefRating float64  `json:"opponent_def_rating"` // 0 = unknown
	OpponentPace      float64  `json:"opponent_pace"`       // 0 = unknown
	Spread            *float64 `json:"spread,omitempty"`
	OverUnder         *float64 `json:"over_under,omitempty"`
	IsHome            bool     `json:"is_home"`

	// Health and rest.
	InjuryStatus       InjuryStatus `json:"injury_status"`
	IsBackToBack       bool         `json:"is_back_to_back"`
	OpponentBackToBack bool         `json:"opponent_back_to_back"`
}

// SeasonPRA is the season-average PRA, the fallback baseline when the
// recent window is empty.
func (c PlayerGameContext) SeasonPRA() float64 {
	return c.PPG + c.RPG + c.APG
}

// RecentStats summarizes the recent PRA window. With an empty window every
// aggregate falls back to the season average and the deviation is zero.
type RecentStats struct {
	AvgPRA    float64 `json:"avg_pra"`
	MaxPRA    float64 `json:"max_pra"`
	MinPRA    float64 `json:"min_pra"`
	StdDevPRA float64 `json:"std_dev_pra"`
	Games     int     `json:"games"`
}

// Recent computes window aggregates for the context.
func (c PlayerGameContext) Recent() RecentStats {
	if len(c.LastNPRA) == 0 {
		season := c.SeasonPRA()
		return RecentStats{AvgPRA: season, MaxPRA: season, MinPRA: season}
	}

	rs := RecentStats{
		AvgPRA: stat.Mean(c.LastNPRA, nil),
		MaxPRA: c.LastNPRA[0],
		MinPRA: c.LastNPRA[0],
		Games:  len(c.LastNPRA),
	}
	for _, v := range c.LastNPRA {
		if v > rs.MaxPRA {
			rs.MaxPRA = v
		}
		if v < rs.MinPRA {
			rs.MinPRA = v
		}
	}
	if len(c.LastNPRA) > 1 {
		rs.StdDevPRA = stat.PopStdDev(c.LastNPRA, nil)
	}
	return rs
}

// EffectiveUsage returns the usage rate with the league-average fallback.
func (c PlayerGameContext) EffectiveUsage() float64 {
	if c.UsageRate <= 0 {
		return LeagueAvgUsageRate
	}
	return c.UsageRate
}

// EffectiveMinutes returns minutes per game with the league-average fallback.
func (c PlayerGameContext) EffectiveMinutes() float64 {
	if c.MPG <= 0 {
		return LeagueAvgMinutes
	}
	return c.MPG
}

// ScoredPlayer is the output of one scoring variant applied to one context.
type ScoredPlayer struct {
	PlayerGameContext

	Variant         string             `json:"variant"`
	CompositeScore  float64            `json:"composite_score"`
	ProjectedPRA    float64            `json:"projected_pra"`
	CeilingPRA      float64            `json:"ceiling_pra"`
	ComponentScores map[string]float64 `json:"component_scores"`
	KeyFactors      []string           `json:"key_factors"`
	Confidence      Confidence         `json:"confidence"`
	Rank            int                `json:"rank,omitempty"` // 1-based, set by ranking
}
