package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hooplytics/pra-engine/internal/fixtures"
	"github.com/hooplytics/pra-engine/internal/teamdata"
)

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
	Season    string    `json:"season"`
	Teams     int       `json:"teams"`
}

// Health reports liveness plus which team-data snapshot is loaded.
func Health(teams *teamdata.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:    "healthy",
			Service:   "pra-engine",
			Timestamp: time.Now().UTC(),
			Season:    teams.Season(),
			Teams:     teams.Size(),
		})
	}
}

// DemoSlate serves a deterministic fixture slate so the API can be
// exercised without an upstream data feed. The seed comes from the query
// string or today's date.
func DemoSlate(defaultSeed int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		seed := defaultSeed
		if seed == 0 {
			seed = fixtures.DateSeed(time.Now().UTC())
		}
		builder := fixtures.NewBuilder(seed)
		contexts := builder.Slate()
		c.JSON(http.StatusOK, gin.H{
			"seed":    seed,
			"players": contexts,
			"actuals": builder.SimulateOutcomes(contexts),
		})
	}
}
