package scoring

import (
	"fmt"
	"math"

	"github.com/hooplytics/pra-engine/internal/teamdata"
	"github.com/hooplytics/pra-engine/internal/types"
)

// Sub-score tuning constants. PRA ceilings reflect a realistic league-best
// night; elite thresholds mark where a step bonus fires.
const (
	recencyCeilingPRA = 65.0
	ceilingDivisor    = 70.0

	hotStreakRatio  = 1.10
	coldStreakRatio = 0.90
	streakSwing     = 8.0

	eliteUsageRate   = 30.0
	usageNormalizer  = 32.0
	eliteMinutes     = 35.0
	minutesNormalize = 36.0
	eliteStepBonus   = 5.0

	tripleDoubleBonusPer = 2.0
	tripleDoubleBonusCap = 12.0

	tightSpread   = 4.0
	bigSpread     = 10.0
	blowoutSpread = 14.0

	highTotal     = 228.0
	veryHighTotal = 235.0
	softTotal     = 220.0
	lowTotal      = 215.0
)

// subScores carries the five component scores plus the factor strings the
// thresholds fired, grouped so variants can order them by philosophy.
type subScores struct {
	recency     float64
	ceiling     float64
	volume      float64
	matchup     float64
	environment float64

	statFactors    []string // player-intrinsic
	contextFactors []string // matchup + environment
}

func (s subScores) components() map[string]float64 {
	return map[string]float64{
		ComponentRecency:     s.recency,
		ComponentCeiling:     s.ceiling,
		ComponentVolume:      s.volume,
		ComponentMatchup:     s.matchup,
		ComponentEnvironment: s.environment,
	}
}

// recencyScore is a linearly-weighted moving average of the PRA window,
// most recent game weighted heaviest, normalized against a realistic
// ceiling. An empty window falls back to the season average.
func recencyScore(ctx types.PlayerGameContext, rs types.RecentStats) (float64, []string) {
	var factors []string

	base := rs.AvgPRA
	if n := len(ctx.LastNPRA); n > 0 {
		var weighted, totalWeight float64
		for i, pra := range ctx.LastNPRA {
			w := float64(i + 1) // oldest first, newest gets weight n
			weighted += w * pra
			totalWeight += w
		}
		base = weighted / totalWeight
	}

	score := base / recencyCeilingPRA * 100

	// Streak adjustment: last three games against the full window.
	if len(ctx.LastNPRA) >= 3 && rs.AvgPRA > 0 {
		recent := ctx.LastNPRA[len(ctx.LastNPRA)-3:]
		last3 := (recent[0] + recent[1] + recent[2]) / 3
		switch ratio := last3 / rs.AvgPRA; {
		case ratio >= hotStreakRatio:
			score += streakSwing
			factors = append(factors, "Hot streak")
		case ratio <= coldStreakRatio:
			score -= streakSwing
			factors = append(factors, "Cold streak")
		}
	}

	return clamp(score, 0, 100), factors
}

// ceilingScore blends the window max, a statistical ceiling (avg + 1.5
// sigma), and a season-derived ceiling 50/30/20, with a capped bonus for
// triple-double history.
func ceilingScore(ctx types.PlayerGameContext, rs types.RecentStats) (float64, []string) {
	var factors []string

	statCeiling := rs.AvgPRA + 1.5*rs.StdDevPRA
	seasonCeiling := ctx.SeasonPRA() * 1.30

	blend := 0.50*rs.MaxPRA + 0.30*statCeiling + 0.20*seasonCeiling
	score := blend / ceilingDivisor * 100

	if ctx.TripleDoubleCount > 0 {
		bonus := math.Min(tripleDoubleBonusPer*float64(ctx.TripleDoubleCount), tripleDoubleBonusCap)
		score += bonus
		if ctx.TripleDoubleCount >= 3 {
			factors = append(factors, fmt.Sprintf("Triple-double threat (%d this season)", ctx.TripleDoubleCount))
		}
	}

	return clamp(score, 0, 100), factors
}

// volumeScore combines usage- and minutes-normalized factors against elite
// thresholds. Missing values default to league averages.
func volumeScore(ctx types.PlayerGameContext) (float64, []string) {
	var factors []string

	usage := ctx.EffectiveUsage()
	minutes := ctx.EffectiveMinutes()

	usageScore := math.Min(usage/usageNormalizer, 1.0) * 100
	minutesScore := math.Min(minutes/minutesNormalize, 1.0) * 100

	score := 0.55*usageScore + 0.45*minutesScore
	if usage >= eliteUsageRate {
		score += eliteStepBonus
		factors = append(factors, fmt.Sprintf("Elite usage (%.1f%%)", usage))
	}
	if minutes >= eliteMinutes {
		score += eliteStepBonus
		factors = append(factors, fmt.Sprintf("Heavy minutes (%.1f MPG)", minutes))
	}

	return clamp(score, 0, 100), factors
}

// matchupScore starts neutral and shifts with opponent defensive rating,
// pace, the position-specific defense modifier, and spread closeness.
func matchupScore(ctx types.PlayerGameContext, teams *teamdata.Table) (float64, []string) {
	var factors []string

	opponent := teams.Team(ctx.OpponentAbbrev)
	drtg := ctx.OpponentDefRating
	if drtg <= 0 {
		drtg = opponent.DefRating
	}
	pace := ctx.OpponentPace
	if pace <= 0 {
		pace = opponent.Pace
	}

	score := 50.0
	score += (drtg - types.LeagueAvgDefRating) * 2.5
	score += (pace - types.LeagueAvgPace) * 1.5

	switch {
	case drtg >= 115:
		factors = append(factors, fmt.Sprintf("Weak opposing defense (%.1f DRTG)", drtg))
	case drtg <= 108:
		factors = append(factors, fmt.Sprintf("Elite opposing defense (%.1f DRTG)", drtg))
	}
	if pace >= 102.5 {
		factors = append(factors, "Fast-paced game")
	}

	mod := teams.PositionModifier(ctx.OpponentAbbrev, ctx.Position)
	score += (mod - 1.0) * 40
	if mod >= 1.05 {
		factors = append(factors, fmt.Sprintf("Soft matchup for %ss", ctx.Position))
	} else if mod <= 0.95 {
		factors = append(factors, fmt.Sprintf("Tough matchup for %ss", ctx.Position))
	}

	// Spread closeness: tight games keep starters on the floor, lopsided
	// lines bleed fourth-quarter minutes. Missing spread contributes
	// nothing either way.
	if ctx.Spread != nil {
		switch magnitude := math.Abs(*ctx.Spread); {
		case magnitude <= tightSpread:
			score += 6
		case magnitude >= blowoutSpread:
			score -= 18
		case magnitude >= bigSpread:
			score -= 12
		}
	}

	return clamp(score, 0, 100), factors
}

// environmentScore reads the betting market and schedule: total, spread,
// home court, and rest.
func environmentScore(ctx types.PlayerGameContext) (float64, []string) {
	var factors []string
	score := 50.0

	if ctx.OverUnder != nil {
		switch total := *ctx.OverUnder; {
		case total >= veryHighTotal:
			score += 20
			factors = append(factors, fmt.Sprintf("Very high total (%.1f)", total))
		case total >= highTotal:
			score += 15
			factors = append(factors, fmt.Sprintf("High total (%.1f)", total))
		case total < lowTotal:
			score -= 15
			factors = append(factors, fmt.Sprintf("Low total (%.1f)", total))
		case total < softTotal:
			score -= 8
		}
	}

	if ctx.Spread != nil {
		switch magnitude := math.Abs(*ctx.Spread); {
		case magnitude >= blowoutSpread:
			score -= 25
			factors = append(factors, "Blowout risk")
		case magnitude >= bigSpread:
			score -= 15
			factors = append(factors, "Blowout risk")
		case magnitude <= tightSpread:
			score += 10
			factors = append(factors, "Tight spread")
		}
	}

	if ctx.IsHome {
		score += 5
	}
	if ctx.IsBackToBack {
		score -= 6
		factors = append(factors, "Back-to-back")
	}
	if ctx.OpponentBackToBack {
		score += 4
		factors = append(factors, "Opponent on back-to-back")
	}

	return clamp(score, 0, 100), factors
}

// computeSubScores evaluates all five families for one context.
func computeSubScores(ctx types.PlayerGameContext, rs types.RecentStats, teams *teamdata.Table) subScores {
	var s subScores

	var f []string
	s.recency, f = recencyScore(ctx, rs)
	s.statFactors = append(s.statFactors, f...)
	s.ceiling, f = ceilingScore(ctx, rs)
	s.statFactors = append(s.statFactors, f...)
	s.volume, f = volumeScore(ctx)
	s.statFactors = append(s.statFactors, f...)

	s.matchup, f = matchupScore(ctx, teams)
	s.contextFactors = append(s.contextFactors, f...)
	s.environment, f = environmentScore(ctx)
	s.contextFactors = append(s.contextFactors, f...)

	return s
}
