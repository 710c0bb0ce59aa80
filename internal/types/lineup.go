package types

// SalariedPlayer pairs a scored player with a contest salary. Salaries come
// from the DFS platform when available, otherwise from the optimizer's
// placeholder estimate.
type SalariedPlayer struct {
	ScoredPlayer
	Salary int `json:"salary"`
}

// ValueDensity is the greedy selection key: score per $1000 of salary.
// A zero salary yields zero density rather than a division blowup.
func (p SalariedPlayer) ValueDensity() float64 {
	if p.Salary <= 0 {
		return 0
	}
	return p.CompositeScore / (float64(p.Salary) / 1000.0)
}

// LineupSettings configures the lineup builder.
type LineupSettings struct {
	SalaryCap          int      `json:"salary_cap"`
	RosterSize         int      `json:"roster_size"`
	Positions          []string `json:"positions"` // slot labels, fill order
	MinSalaryPerPlayer int      `json:"min_salary_per_player"`
	MaxPlayersPerTeam  int      `json:"max_players_per_team"`
	Variant            string   `json:"variant"`
}

// LineupSlot binds at most one player to a position label in the roster
// template. Filled is false when the greedy pass found no eligible player.
type LineupSlot struct {
	Label  string         `json:"label"`
	Player SalariedPlayer `json:"player,omitempty"`
	Filled bool           `json:"filled"`
}

// Lineup is one constructed roster.
type Lineup struct {
	ID              string       `json:"id"`
	Slots           []LineupSlot `json:"slots"`
	TotalSalary     int          `json:"total_salary"`
	RemainingSalary int          `json:"remaining_salary"`
	ProjectedScore  float64      `json:"projected_score"`
	ValueScore      float64      `json:"value_score"` // score per $1000 spent
}

// FilledCount reports how many slots carry a player.
func (l Lineup) FilledCount() int {
	n := 0
	for _, s := range l.Slots {
		if s.Filled {
			n++
		}
	}
	return n
}

// Players returns the assigned players in slot order.
func (l Lineup) Players() []SalariedPlayer {
	players := make([]SalariedPlayer, 0, len(l.Slots))
	for _, s := range l.Slots {
		if s.Filled {
			players = append(players, s.Player)
		}
	}
	return players
}
