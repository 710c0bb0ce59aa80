// Package optimizer constructs salary-capped lineups from scored players.
// It is a greedy value-density heuristic, not a solver: it never backtracks
// and leaves a slot empty when no eligible candidate remains, so callers
// should treat its output as a strong starting point rather than a proven
// optimum.
package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hooplytics/pra-engine/internal/types"
)

// BuildLineup runs one greedy pass: candidates sorted by score per $1000,
// each slot in template order takes the first unused, eligible candidate
// that fits under the cap and the per-team limit.
func BuildLineup(players []types.SalariedPlayer, settings types.LineupSettings, logger *logrus.Logger) types.Lineup {
	return buildLineupExcluding(players, settings, nil, logger)
}

func buildLineupExcluding(players []types.SalariedPlayer, settings types.LineupSettings, excluded map[string]bool, logger *logrus.Logger) types.Lineup {
	candidates := make([]types.SalariedPlayer, 0, len(players))
	for _, p := range players {
		if excluded[p.PlayerID] {
			continue
		}
		candidates = append(candidates, p)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ValueDensity() > candidates[j].ValueDensity()
	})

	lineup := types.Lineup{
		ID:    uuid.New().String(),
		Slots: make([]types.LineupSlot, len(settings.Positions)),
	}
	used := make(map[string]bool, len(settings.Positions))
	teamCounts := make(map[string]int)

	for i, label := range settings.Positions {
		lineup.Slots[i] = types.LineupSlot{Label: label}
		for _, candidate := range candidates {
			if used[candidate.PlayerID] {
				continue
			}
			if !EligibleForSlot(candidate.Position, label) {
				continue
			}
			if settings.MaxPlayersPerTeam > 0 && teamCounts[candidate.Team]+1 > settings.MaxPlayersPerTeam {
				continue
			}
			if lineup.TotalSalary+candidate.Salary > settings.SalaryCap {
				continue
			}

			lineup.Slots[i].Player = candidate
			lineup.Slots[i].Filled = true
			lineup.TotalSalary += candidate.Salary
			lineup.ProjectedScore += candidate.CompositeScore
			used[candidate.PlayerID] = true
			teamCounts[candidate.Team]++
			break
		}
	}

	lineup.RemainingSalary = settings.SalaryCap - lineup.TotalSalary
	if lineup.TotalSalary > 0 {
		lineup.ValueScore = lineup.ProjectedScore / (float64(lineup.TotalSalary) / 1000.0)
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"lineup_id":       lineup.ID,
			"slots_filled":    lineup.FilledCount(),
			"total_salary":    lineup.TotalSalary,
			"projected_score": lineup.ProjectedScore,
		}).Debug("Lineup constructed")
	}
	return lineup
}

// GenerateLineups produces up to count candidate lineups: the primary
// greedy lineup plus re-runs that exclude each of the top count-1 scorers
// one at a time. Incomplete lineups are dropped, duplicates collapse by
// assigned player set, and the survivors sort by projected score.
func GenerateLineups(players []types.SalariedPlayer, count int, settings types.LineupSettings, logger *logrus.Logger) []types.Lineup {
	if count <= 0 || len(players) == 0 {
		return nil
	}

	byScore := make([]types.SalariedPlayer, len(players))
	copy(byScore, players)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].CompositeScore > byScore[j].CompositeScore
	})

	candidates := []types.Lineup{BuildLineup(players, settings, logger)}
	for k := 0; k < count-1 && k < len(byScore); k++ {
		excluded := map[string]bool{byScore[k].PlayerID: true}
		candidates = append(candidates, buildLineupExcluding(players, settings, excluded, logger))
	}

	seen := make(map[string]bool, len(candidates))
	lineups := make([]types.Lineup, 0, count)
	for _, l := range candidates {
		if l.FilledCount() != len(settings.Positions) {
			continue
		}
		key := lineupKey(l)
		if seen[key] {
			continue
		}
		seen[key] = true
		lineups = append(lineups, l)
	}

	sort.SliceStable(lineups, func(i, j int) bool {
		return lineups[i].ProjectedScore > lineups[j].ProjectedScore
	})
	if len(lineups) > count {
		lineups = lineups[:count]
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"requested": count,
			"generated": len(lineups),
			"players":   len(players),
		}).Info("Lineup generation completed")
	}
	return lineups
}

// lineupKey identifies a lineup by its assigned player multiset, ignoring
// which slot each player landed in.
func lineupKey(l types.Lineup) string {
	ids := make([]string, 0, len(l.Slots))
	for _, s := range l.Slots {
		if s.Filled {
			ids = append(ids, s.Player.PlayerID)
		}
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// ValidateLineup returns human-readable violations; an empty list means the
// lineup is valid.
func ValidateLineup(lineup types.Lineup, settings types.LineupSettings) []string {
	var violations []string

	if unfilled := len(lineup.Slots) - lineup.FilledCount(); unfilled > 0 {
		violations = append(violations, fmt.Sprintf("%d roster slots unfilled", unfilled))
	}
	if lineup.TotalSalary > settings.SalaryCap {
		violations = append(violations, fmt.Sprintf("total salary $%d exceeds cap $%d", lineup.TotalSalary, settings.SalaryCap))
	}

	teamCounts := make(map[string]int)
	for _, s := range lineup.Slots {
		if !s.Filled {
			continue
		}
		teamCounts[s.Player.Team]++
		if !EligibleForSlot(s.Player.Position, s.Label) {
			violations = append(violations, fmt.Sprintf("%s (%s) cannot fill the %s slot", s.Player.Name, s.Player.Position, s.Label))
		}
	}
	if settings.MaxPlayersPerTeam > 0 {
		teams := make([]string, 0, len(teamCounts))
		for team := range teamCounts {
			teams = append(teams, team)
		}
		sort.Strings(teams)
		for _, team := range teams {
			if teamCounts[team] > settings.MaxPlayersPerTeam {
				violations = append(violations, fmt.Sprintf("team %s has %d players, limit is %d", team, teamCounts[team], settings.MaxPlayersPerTeam))
			}
		}
	}

	return violations
}
