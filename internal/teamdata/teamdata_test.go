package teamdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplytics/pra-engine/internal/types"
)

func TestLoad_AllThirtyTeams(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, table.Size())
	assert.NotEmpty(t, table.Season())
}

func TestTeam_KnownAbbrev(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	uta := table.Team("UTA")
	assert.Equal(t, "UTA", uta.Abbrev)
	assert.InDelta(t, 117.2, uta.DefRating, 1e-9)
	assert.InDelta(t, 103.5, uta.Pace, 1e-9)
}

func TestTeam_UnknownAbbrevGetsLeagueAverages(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	team := table.Team("SEA")
	assert.Equal(t, "SEA", team.Abbrev)
	assert.InDelta(t, types.LeagueAvgDefRating, team.DefRating, 1e-9)
	assert.InDelta(t, types.LeagueAvgPace, team.Pace, 1e-9)
	assert.Empty(t, team.PositionDefense)
}

func TestPositionModifier(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	assert.InDelta(t, 1.08, table.PositionModifier("UTA", "PG"), 1e-9)
	assert.InDelta(t, 1.0, table.PositionModifier("SEA", "PG"), 1e-9, "unknown team is neutral")
	assert.InDelta(t, 1.0, table.PositionModifier("UTA", "XX"), 1e-9, "unknown position is neutral")
}

func TestDataset_ValuesWithinSaneBounds(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	for _, abbrev := range []string{"BOS", "DEN", "OKC", "WAS", "UTA", "MIA", "LAL", "NYK"} {
		team := table.Team(abbrev)
		assert.Greater(t, team.DefRating, 100.0, abbrev)
		assert.Less(t, team.DefRating, 125.0, abbrev)
		assert.Greater(t, team.Pace, 90.0, abbrev)
		assert.Less(t, team.Pace, 110.0, abbrev)
		for pos, mod := range team.PositionDefense {
			assert.Greater(t, mod, 0.8, "%s %s", abbrev, pos)
			assert.Less(t, mod, 1.2, "%s %s", abbrev, pos)
		}
	}
}
