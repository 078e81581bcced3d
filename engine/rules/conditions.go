// Package rules implements action eligibility: condition evaluation and
// catalog filtering.
package rules

import (
	"github.com/nmoretto/fieldops/types"
)

// EvalCondition evaluates a single condition against the player.
// Unrecognized kinds fail closed so malformed content never grants
// access.
func EvalCondition(c types.Condition, p *types.Player) bool {
	switch c.Kind {
	case types.HasAnyWeapon:
		return p.Weapon != types.NoWeapon

	case types.HasNamedWeapon:
		if p.Weapon == types.NoWeapon {
			return false
		}
		return p.Inventory[p.Weapon].Name == c.Name

	case types.HasItem:
		for _, item := range p.Inventory {
			if item.Name == c.Name {
				return true
			}
		}
		return false

	case types.MissionEquals:
		return p.Missions[types.MissionCurrent] == c.Value

	default:
		return false
	}
}

// EvalAll returns true if all conditions pass (AND logic). An empty
// condition list is vacuously true.
func EvalAll(conditions []types.Condition, p *types.Player) bool {
	for _, c := range conditions {
		if !EvalCondition(c, p) {
			return false
		}
	}
	return true
}
