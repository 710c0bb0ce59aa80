// Package fixtures builds deterministic demo and test data. It is decoupled
// from the scoring engine on purpose: the backtest engine replays real
// actuals, and anything generated here is strictly illustrative.
package fixtures

import (
	"math/rand"
	"time"

	"github.com/hooplytics/pra-engine/internal/types"
)

type rosterEntry struct {
	id, name, team, position string
	ppg, rpg, apg, mpg       float64
	usage                    float64
	tripleDoubles            int
}

// A fixed pool of high-usage stars; the builder derives nightly context
// around these season lines.
var starRoster = []rosterEntry{
	{"jokic-n", "Nikola Jokic", "DEN", types.PositionC, 26.8, 12.3, 9.1, 34.5, 29.8, 18},
	{"doncic-l", "Luka Doncic", "DAL", types.PositionPG, 32.1, 8.9, 9.5, 37.2, 36.0, 14},
	{"giannis-a", "Giannis Antetokounmpo", "MIL", types.PositionPF, 30.2, 11.4, 6.3, 35.1, 33.2, 7},
	{"embiid-j", "Joel Embiid", "PHI", types.PositionC, 33.5, 10.8, 5.4, 33.9, 37.1, 2},
	{"sga-s", "Shai Gilgeous-Alexander", "OKC", types.PositionSG, 31.1, 5.6, 6.4, 34.8, 32.8, 1},
	{"tatum-j", "Jayson Tatum", "BOS", types.PositionSF, 27.1, 8.6, 4.8, 35.9, 29.5, 1},
	{"james-l", "LeBron James", "LAL", types.PositionSF, 25.4, 7.2, 8.1, 35.2, 28.9, 5},
	{"davis-a", "Anthony Davis", "LAL", types.PositionPF, 24.8, 12.6, 3.6, 35.6, 27.7, 1},
	{"sabonis-d", "Domantas Sabonis", "SAC", types.PositionC, 19.9, 13.7, 8.2, 35.7, 23.8, 17},
	{"haliburton-t", "Tyrese Haliburton", "IND", types.PositionPG, 20.8, 3.9, 10.9, 32.6, 24.1, 3},
	{"brunson-j", "Jalen Brunson", "NYK", types.PositionPG, 28.7, 3.6, 6.7, 35.4, 32.4, 0},
	{"edwards-a", "Anthony Edwards", "MIN", types.PositionSG, 26.0, 5.4, 5.1, 35.1, 30.1, 0},
	{"booker-d", "Devin Booker", "PHX", types.PositionSG, 27.1, 4.5, 6.9, 36.0, 31.3, 0},
	{"mitchell-d", "Donovan Mitchell", "CLE", types.PositionSG, 26.6, 5.1, 6.1, 35.3, 31.8, 0},
	{"fox-d", "De'Aaron Fox", "SAC", types.PositionPG, 26.6, 4.6, 5.6, 35.9, 29.9, 0},
	{"wembanyama-v", "Victor Wembanyama", "SAS", types.PositionC, 21.4, 10.6, 3.9, 29.7, 29.2, 2},
}

var opponentPool = []string{"WAS", "UTA", "CHA", "DET", "POR", "TOR", "ATL", "IND", "BOS", "OKC", "MIN", "MIA"}

// Builder generates deterministic slates from a seed.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a builder. The same seed always produces the same
// slates and outcomes.
func NewBuilder(seed int64) *Builder {
	return &Builder{rng: rand.New(rand.NewSource(seed))}
}

// DateSeed derives a stable seed from a calendar date, so a demo slate for
// a given night is reproducible without storing it.
func DateSeed(date time.Time) int64 {
	y, m, d := date.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}

// Slate assigns each roster player a game context for one night.
func (b *Builder) Slate() []types.PlayerGameContext {
	contexts := make([]types.PlayerGameContext, 0, len(starRoster))
	for _, entry := range starRoster {
		seasonPRA := entry.ppg + entry.rpg + entry.apg

		window := make([]float64, 10)
		for i := range window {
			window[i] = seasonPRA * (0.82 + 0.36*b.rng.Float64())
		}

		spread := -12.0 + 24.0*b.rng.Float64()
		overUnder := 212.0 + 26.0*b.rng.Float64()

		contexts = append(contexts, types.PlayerGameContext{
			PlayerID:          entry.id,
			Name:              entry.name,
			Team:              entry.team,
			Position:          entry.position,
			GamesPlayed:       55 + b.rng.Intn(20),
			PPG:               entry.ppg,
			RPG:               entry.rpg,
			APG:               entry.apg,
			MPG:               entry.mpg,
			FieldGoalPct:      0.44 + 0.12*b.rng.Float64(),
			LastNPRA:          window,
			UsageRate:         entry.usage,
			TripleDoubleCount: entry.tripleDoubles,
			OpponentAbbrev:    opponentPool[b.rng.Intn(len(opponentPool))],
			Spread:            &spread,
			OverUnder:         &overUnder,
			IsHome:            b.rng.Intn(2) == 0,
			InjuryStatus:      types.InjuryHealthy,
			IsBackToBack:      b.rng.Intn(5) == 0,
		})
	}
	return contexts
}

// SimulateOutcomes perturbs each context's recent average into a plausible
// box score. Illustrative only; never a substitute for real actuals in a
// regression backtest.
func (b *Builder) SimulateOutcomes(contexts []types.PlayerGameContext) []types.ActualOutcome {
	outcomes := make([]types.ActualOutcome, 0, len(contexts))
	for _, ctx := range contexts {
		rs := ctx.Recent()
		realized := rs.AvgPRA * (0.75 + 0.5*b.rng.Float64())

		season := ctx.SeasonPRA()
		if season <= 0 {
			season = 1
		}
		outcomes = append(outcomes, types.ActualOutcome{
			PlayerID:  ctx.PlayerID,
			Name:      ctx.Name,
			Points:    realized * ctx.PPG / season,
			Rebounds:  realized * ctx.RPG / season,
			Assists:   realized * ctx.APG / season,
			Steals:    float64(b.rng.Intn(4)),
			Blocks:    float64(b.rng.Intn(3)),
			Turnovers: float64(1 + b.rng.Intn(5)),
		})
	}
	return outcomes
}
