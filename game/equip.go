package game

import (
	"context"
	"fmt"

	"github.com/nmoretto/fieldops/engine"
	"github.com/nmoretto/fieldops/engine/state"
)

// equipMenu lists the inventory with bonuses and arms the picked item.
// Anything but a valid number cancels without touching the loadout.
func (g *Game) equipMenu(ctx context.Context) error {
	menu := g.Catalog.EquipMenu
	g.GW.Say("")
	g.GW.Say(menu.Title)
	for i, item := range g.player.Inventory {
		g.GW.Say(fmt.Sprintf("%d. %s (atk +%d, def +%d)",
			i+1, item.Name, item.AttackBonus, item.DefenseBonus))
	}
	choice, err := g.prompt(menu.Prompt)
	if err != nil {
		return err
	}
	idx, ok := engine.ParseChoice(choice, len(g.player.Inventory))
	if !ok {
		g.GW.Say(menu.Cancel)
		return nil
	}
	if err := state.EquipIndex(g.player, idx-1); err != nil {
		return err
	}
	g.GW.Say(engine.Expand(menu.Success, "{item}", g.player.Inventory[idx-1].Name))
	return g.save(ctx)
}
