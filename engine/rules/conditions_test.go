package rules

import (
	"reflect"
	"testing"

	"github.com/nmoretto/fieldops/types"
)

func condTestPlayer() *types.Player {
	return &types.Player{
		Name:       "KX-41",
		HP:         100,
		BaseAttack: 10,
		Defense:    5,
		Inventory: []types.Item{
			{Name: "field knife", AttackBonus: 5},
			{Name: "flash canister"},
		},
		Weapon:   0,
		Missions: map[string]any{"current": "standard", "completed": 2},
	}
}

func TestEvalCondition(t *testing.T) {
	p := condTestPlayer()

	tests := []struct {
		name string
		cond types.Condition
		want bool
	}{
		{
			name: "has_any_weapon: armed",
			cond: types.Condition{Kind: types.HasAnyWeapon},
			want: true,
		},
		{
			name: "has_named_weapon: equipped weapon matches",
			cond: types.Condition{Kind: types.HasNamedWeapon, Name: "field knife"},
			want: true,
		},
		{
			name: "has_named_weapon: different weapon equipped",
			cond: types.Condition{Kind: types.HasNamedWeapon, Name: "crowbar"},
			want: false,
		},
		{
			name: "has_item: item present",
			cond: types.Condition{Kind: types.HasItem, Name: "flash canister"},
			want: true,
		},
		{
			name: "has_item: equipped weapon is still an inventory member",
			cond: types.Condition{Kind: types.HasItem, Name: "field knife"},
			want: true,
		},
		{
			name: "has_item: item absent",
			cond: types.Condition{Kind: types.HasItem, Name: "rope"},
			want: false,
		},
		{
			name: "mission_equals: matches current",
			cond: types.Condition{Kind: types.MissionEquals, Value: "standard"},
			want: true,
		},
		{
			name: "mission_equals: does not match",
			cond: types.Condition{Kind: types.MissionEquals, Value: "covert"},
			want: false,
		},
		{
			name: "unknown condition kind: false",
			cond: types.Condition{Kind: "bogus"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvalCondition(tt.cond, p)
			if got != tt.want {
				t.Errorf("EvalCondition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalCondition_Unarmed(t *testing.T) {
	p := condTestPlayer()
	p.Weapon = types.NoWeapon

	tests := []struct {
		name string
		cond types.Condition
		want bool
	}{
		{
			name: "has_any_weapon: unarmed",
			cond: types.Condition{Kind: types.HasAnyWeapon},
			want: false,
		},
		{
			name: "has_named_weapon: unarmed",
			cond: types.Condition{Kind: types.HasNamedWeapon, Name: "field knife"},
			want: false,
		},
		{
			name: "has_item: unaffected by equipment",
			cond: types.Condition{Kind: types.HasItem, Name: "field knife"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvalCondition(tt.cond, p)
			if got != tt.want {
				t.Errorf("EvalCondition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalCondition_MissionIntValue(t *testing.T) {
	p := condTestPlayer()
	p.Missions["current"] = 7

	if !EvalCondition(types.Condition{Kind: types.MissionEquals, Value: 7}, p) {
		t.Error("expected int mission value to match")
	}
	if EvalCondition(types.Condition{Kind: types.MissionEquals, Value: 8}, p) {
		t.Error("expected different int mission value to fail")
	}
}

func TestEvalCondition_MissionUnset(t *testing.T) {
	p := condTestPlayer()
	delete(p.Missions, "current")

	if EvalCondition(types.Condition{Kind: types.MissionEquals, Value: "standard"}, p) {
		t.Error("expected missing current mission to fail")
	}
}

func TestEvalAll_AllPass(t *testing.T) {
	p := condTestPlayer()
	conds := []types.Condition{
		{Kind: types.HasAnyWeapon},
		{Kind: types.HasItem, Name: "flash canister"},
		{Kind: types.MissionEquals, Value: "standard"},
	}
	if !EvalAll(conds, p) {
		t.Error("expected all conditions to pass")
	}
}

func TestEvalAll_OneFails(t *testing.T) {
	p := condTestPlayer()
	conds := []types.Condition{
		{Kind: types.HasAnyWeapon},
		{Kind: types.HasItem, Name: "rope"}, // fails
		{Kind: types.MissionEquals, Value: "standard"},
	}
	if EvalAll(conds, p) {
		t.Error("expected conditions to fail")
	}
}

func TestEvalAll_UnknownKindFailsClosed(t *testing.T) {
	p := condTestPlayer()
	// Every other entry passes; the unknown kind must still sink the set.
	conds := []types.Condition{
		{Kind: types.HasAnyWeapon},
		{Kind: "grants_everything"},
		{Kind: types.HasItem, Name: "flash canister"},
	}
	if EvalAll(conds, p) {
		t.Error("expected unknown kind to fail the whole set")
	}
}

func TestEvalAll_Empty(t *testing.T) {
	p := condTestPlayer()
	if !EvalAll(nil, p) {
		t.Error("expected empty conditions to pass")
	}
}

func TestEvalAll_DoesNotMutatePlayer(t *testing.T) {
	p := condTestPlayer()
	before := *p
	before.Inventory = append([]types.Item(nil), p.Inventory...)
	before.Missions = map[string]any{"current": "standard", "completed": 2}

	conds := []types.Condition{
		{Kind: types.HasAnyWeapon},
		{Kind: types.HasNamedWeapon, Name: "field knife"},
		{Kind: types.HasItem, Name: "rope"},
		{Kind: types.MissionEquals, Value: "standard"},
		{Kind: "bogus"},
	}
	EvalAll(conds, p)
	EvalAll(conds, p)

	if !reflect.DeepEqual(*p, before) {
		t.Errorf("evaluation mutated player: %+v != %+v", *p, before)
	}
}
