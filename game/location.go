package game

import "fmt"

// showLocation renders a location header: description, the people
// present, and a numbered action list. Tutorial steps pass their own
// choices instead of the location's actions.
func (g *Game) showLocation(key string, actions []string) {
	loc := g.Catalog.Locations[key]
	g.GW.Say("")
	g.GW.Say(loc.Description)
	if len(loc.NPCs) > 0 {
		g.GW.Say("People here:")
		for _, npc := range loc.NPCs {
			g.GW.Say(" - " + npc)
		}
	} else {
		g.GW.Say("No one around.")
	}
	g.GW.Say("Available actions:")
	for i, action := range actions {
		g.GW.Say(fmt.Sprintf("%d. %s", i+1, action))
	}
}
