// Package state builds and mutates the operative's runtime record, and
// converts it to and from the flat document shape used by the content
// template and the save record.
package state

import (
	"errors"
	"fmt"

	"github.com/nmoretto/fieldops/engine"
	"github.com/nmoretto/fieldops/types"
)

// ErrNoSuchItem is returned when an equip target is not in the inventory.
var ErrNoSuchItem = errors.New("no such item")

const codenameLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Codename generates an operative designation such as "AB-12".
func Codename(rng *engine.RNG) string {
	a := codenameLetters[rng.Intn(len(codenameLetters))]
	b := codenameLetters[rng.Intn(len(codenameLetters))]
	return fmt.Sprintf("%c%c-%02d", a, b, rng.Intn(100))
}

// NewPlayer builds a runtime player from a flat record. Missing stats fall
// back to standard issue (hp 100, base attack 10, defense 5), a missing
// name draws a fresh codename, and an equipment entry that does not
// resolve into the inventory leaves the operative unarmed.
func NewPlayer(rec types.PlayerRecord, rng *engine.RNG) *types.Player {
	name := rec.Name
	if name == "" {
		name = Codename(rng)
	}
	p := &types.Player{
		Name:       name,
		HP:         statOr(rec.Stats, "hp", 100),
		BaseAttack: statOr(rec.Stats, "base_attack", 10),
		Defense:    statOr(rec.Stats, "defense", engine.DefenseBaseline),
		Inventory:  append([]types.Item{}, rec.Inventory...),
		Weapon:     types.NoWeapon,
		Missions:   normalizeMissions(rec.Missions),
	}
	if rec.Equipment.Weapon != nil {
		for i, item := range p.Inventory {
			if item.Name == *rec.Equipment.Weapon {
				p.Weapon = i
				break
			}
		}
	}
	return p
}

// Snapshot converts the runtime player back to the flat record shape.
func Snapshot(p *types.Player) types.PlayerRecord {
	rec := types.PlayerRecord{
		Name: p.Name,
		Stats: map[string]int{
			"hp":          p.HP,
			"base_attack": p.BaseAttack,
			"defense":     p.Defense,
		},
		Inventory: append([]types.Item{}, p.Inventory...),
		Missions:  make(map[string]any, len(p.Missions)),
	}
	for k, v := range p.Missions {
		rec.Missions[k] = v
	}
	if item, ok := Weapon(p); ok {
		name := item.Name
		rec.Equipment.Weapon = &name
	}
	return rec
}

// Weapon returns the equipped item, if any.
func Weapon(p *types.Player) (types.Item, bool) {
	if p.Weapon == types.NoWeapon {
		return types.Item{}, false
	}
	return p.Inventory[p.Weapon], true
}

// HasItem reports whether the named item is in the inventory.
func HasItem(p *types.Player, name string) bool {
	for _, item := range p.Inventory {
		if item.Name == name {
			return true
		}
	}
	return false
}

// AddItem appends an item to the inventory and returns its index.
func AddItem(p *types.Player, item types.Item) int {
	p.Inventory = append(p.Inventory, item)
	return len(p.Inventory) - 1
}

// Equip arms the named inventory item.
func Equip(p *types.Player, name string) error {
	for i, item := range p.Inventory {
		if item.Name == name {
			p.Weapon = i
			return nil
		}
	}
	return ErrNoSuchItem
}

// EquipIndex arms the inventory item at index i.
func EquipIndex(p *types.Player, i int) error {
	if i < 0 || i >= len(p.Inventory) {
		return ErrNoSuchItem
	}
	p.Weapon = i
	return nil
}

func statOr(stats map[string]int, key string, fallback int) int {
	if v, ok := stats[key]; ok {
		return v
	}
	return fallback
}

// normalizeMissions converts whole-number floats (how JSON decodes integer
// counters) back to int so mission comparisons and save round-trips stay
// value-stable.
func normalizeMissions(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	if f, ok := v.(float64); ok && f == float64(int(f)) {
		return int(f)
	}
	return v
}
