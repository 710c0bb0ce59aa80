// Package teamdata holds the per-team defensive and pace tables the scoring
// engine reads. The dataset is embedded and loaded once at startup; it is a
// per-season snapshot, updated by replacing teams.json, never by touching
// scoring code.
package teamdata

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/hooplytics/pra-engine/internal/types"
)

//go:embed teams.json
var teamsFS embed.FS

// Team is one team's defensive profile. PositionDefense maps a concrete
// position label to a scoring multiplier: above 1.0 means the team gives up
// more than league average to that position.
type Team struct {
	Abbrev          string             `json:"abbrev"`
	DefRating       float64            `json:"def_rating"`
	Pace            float64            `json:"pace"`
	PositionDefense map[string]float64 `json:"position_defense"`
}

type dataset struct {
	Season string `json:"season"`
	Teams  []Team `json:"teams"`
}

// Table is the immutable lookup table injected into the scoring engine.
type Table struct {
	season string
	teams  map[string]Team
}

// Load parses the embedded dataset.
func Load() (*Table, error) {
	raw, err := teamsFS.ReadFile("teams.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded team data: %w", err)
	}

	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parsing team data: %w", err)
	}
	if len(ds.Teams) == 0 {
		return nil, fmt.Errorf("team dataset %q is empty", ds.Season)
	}

	t := &Table{season: ds.Season, teams: make(map[string]Team, len(ds.Teams))}
	for _, team := range ds.Teams {
		t.teams[team.Abbrev] = team
	}
	return t, nil
}

// Season reports which season snapshot is loaded.
func (t *Table) Season() string { return t.season }

// Size reports the number of teams in the table.
func (t *Table) Size() int { return len(t.teams) }

// Team looks up a team's profile. Unknown abbreviations get a league-average
// profile so scoring degrades instead of failing.
func (t *Table) Team(abbrev string) Team {
	if team, ok := t.teams[abbrev]; ok {
		return team
	}
	return Team{
		Abbrev:    abbrev,
		DefRating: types.LeagueAvgDefRating,
		Pace:      types.LeagueAvgPace,
	}
}

// PositionModifier returns the defense multiplier an opponent presents to a
// position, defaulting to neutral for unknown teams or positions.
func (t *Table) PositionModifier(abbrev, position string) float64 {
	team, ok := t.teams[abbrev]
	if !ok {
		return 1.0
	}
	if mod, ok := team.PositionDefense[position]; ok {
		return mod
	}
	return 1.0
}
