package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplytics/pra-engine/internal/scoring"
	"github.com/hooplytics/pra-engine/internal/teamdata"
	"github.com/hooplytics/pra-engine/internal/types"
)

func newRankingsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	teams, err := teamdata.Load()
	require.NoError(t, err)
	engine := scoring.NewEngine(teams, nil)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	h := NewRankingsHandler(engine, log)

	router := gin.New()
	router.POST("/rankings", h.Rank)
	router.POST("/rankings/compare", h.Compare)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func requestPlayers() []types.PlayerGameContext {
	spread := -3.5
	total := 229.0
	return []types.PlayerGameContext{
		{
			PlayerID:       "p-star",
			Name:           "Request Star",
			Team:           "DEN",
			Position:       types.PositionPG,
			GamesPlayed:    50,
			PPG:            29.0,
			RPG:            8.0,
			APG:            7.0,
			MPG:            36.0,
			LastNPRA:       []float64{50, 48, 52, 47, 53, 49, 51, 50, 48, 52},
			UsageRate:      31.0,
			OpponentAbbrev: "UTA",
			Spread:         &spread,
			OverUnder:      &total,
			IsHome:         true,
			InjuryStatus:   types.InjuryHealthy,
		},
		{
			PlayerID:       "p-role",
			Name:           "Role Guard",
			Team:           "BOS",
			Position:       types.PositionSG,
			GamesPlayed:    45,
			PPG:            11.0,
			RPG:            3.0,
			APG:            2.5,
			MPG:            24.0,
			LastNPRA:       []float64{15, 18, 14, 17, 16},
			UsageRate:      18.0,
			OpponentAbbrev: "BOS",
			InjuryStatus:   types.InjuryHealthy,
		},
	}
}

type rankingsResponse struct {
	Variant string               `json:"variant"`
	Players []types.ScoredPlayer `json:"players"`
}

func TestRank_EmptyVariantDefaultsToStatsWeighted(t *testing.T) {
	router := newRankingsRouter(t)

	w := postJSON(t, router, "/rankings", gin.H{"players": requestPlayers()})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var defaulted rankingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &defaulted))
	assert.Equal(t, "stats_weighted", defaulted.Variant)
	require.Len(t, defaulted.Players, 2)
	assert.Equal(t, "stats_weighted", defaulted.Players[0].Variant)
	assert.Equal(t, "p-star", defaulted.Players[0].PlayerID)
	assert.Greater(t, defaulted.Players[0].CompositeScore, 0.0)

	w = postJSON(t, router, "/rankings", gin.H{
		"players": requestPlayers(),
		"variant": "stats_weighted",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var explicit rankingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &explicit))
	for i := range explicit.Players {
		assert.Equal(t, explicit.Players[i].PlayerID, defaulted.Players[i].PlayerID)
		assert.InDelta(t, explicit.Players[i].CompositeScore, defaulted.Players[i].CompositeScore, 1e-12)
	}
}

func TestRank_UnknownVariantRejected(t *testing.T) {
	router := newRankingsRouter(t)

	w := postJSON(t, router, "/rankings", gin.H{
		"players": requestPlayers(),
		"variant": "gradient_boosted",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompare_ExplicitSelfComparisonRejected(t *testing.T) {
	router := newRankingsRouter(t)

	w := postJSON(t, router, "/rankings/compare", gin.H{
		"players":   requestPlayers(),
		"variant_a": "stats_weighted",
		"variant_b": "stats_weighted",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must differ")
}

func TestCompare_OmittedVariantBFallsBackToCounterpart(t *testing.T) {
	router := newRankingsRouter(t)

	w := postJSON(t, router, "/rankings/compare", gin.H{
		"players":   requestPlayers(),
		"variant_a": "stats_weighted",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Comparison types.ComparisonSummary `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stats_weighted", resp.Comparison.VariantA)
	assert.Equal(t, "context_weighted", resp.Comparison.VariantB)
	assert.Equal(t, 2, resp.Comparison.PlayersCompared)
}
