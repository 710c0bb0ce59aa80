package optimizer

import "github.com/hooplytics/pra-engine/internal/types"

// slotEligibility maps a roster slot label to the player positions that can
// fill it. Guards fill G, forwards and centers fill F, UTIL takes anyone,
// and a concrete label always accepts its own position.
var slotEligibility = map[string][]string{
	types.PositionPG: {types.PositionPG},
	types.PositionSG: {types.PositionSG},
	types.PositionSF: {types.PositionSF},
	types.PositionPF: {types.PositionPF},
	types.PositionC:  {types.PositionC},
	types.PositionG:  {types.PositionPG, types.PositionSG, types.PositionG},
	types.PositionF:  {types.PositionSF, types.PositionPF, types.PositionC, types.PositionF},
}

// EligibleForSlot reports whether a player position can fill a slot label.
func EligibleForSlot(position, slotLabel string) bool {
	if slotLabel == types.PositionUTIL {
		return true
	}
	allowed, ok := slotEligibility[slotLabel]
	if !ok {
		return false
	}
	for _, p := range allowed {
		if position == p {
			return true
		}
	}
	return false
}

// DefaultSettings is a showdown-style 6-slot template under a standard cap.
func DefaultSettings(variant string) types.LineupSettings {
	return types.LineupSettings{
		SalaryCap:  50000,
		RosterSize: 6,
		Positions: []string{
			types.PositionG, types.PositionG,
			types.PositionF, types.PositionF,
			types.PositionUTIL, types.PositionUTIL,
		},
		MinSalaryPerPlayer: 3000,
		MaxPlayersPerTeam:  3,
		Variant:            variant,
	}
}
