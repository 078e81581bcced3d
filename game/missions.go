package game

import (
	"context"
	"time"

	"github.com/nmoretto/fieldops/engine"
	"github.com/nmoretto/fieldops/types"
)

// The standard job's opposition, fixed by the scenario.
const (
	missionEnemyHP      = 50
	missionEnemyAttack  = 10
	missionEnemyDefense = 3
)

// standardJob is the Missions["current"] value while a job is assigned.
// Content conditions key off it.
const standardJob = "standard"

// Office menu slots. Content supplies the four labels; this is the
// order they act in.
const (
	officeAccept = iota + 1
	officeWait
	officeEquip
	officeRetire
)

const (
	noticeBeat = 500 * time.Millisecond
	waitBeat   = time.Second
)

// missionLoop is the post-tutorial core: visit the office, act, save,
// repeat until the operative retires or goes down.
func (g *Game) missionLoop(ctx context.Context) error {
	office := g.Catalog.Locations[types.LocMissionOffice]
	misc := g.Catalog.Misc

	for g.player.HP > 0 {
		choice, err := g.visitOffice(false)
		if err != nil {
			return err
		}
		switch choice {
		case officeAccept:
			g.GW.Say(office.AcceptText)
			g.player.Missions[types.MissionCurrent] = standardJob
			enemy := &types.Enemy{
				Name:        misc.MissionEnemyName,
				HP:          missionEnemyHP,
				Attack:      missionEnemyAttack,
				Defense:     missionEnemyDefense,
				Description: misc.MissionEnemyDesc,
			}
			outcome, err := g.encounter(ctx, enemy)
			if err != nil {
				return err
			}
			if g.player.HP <= 0 {
				g.GW.Say(misc.GameOver)
			} else if outcome == engine.EnemyDefeated {
				g.GW.Say(misc.MissionComplete)
				delete(g.player.Missions, types.MissionCurrent)
				g.player.Missions[types.MissionCompleted] = completedCount(g.player) + 1
				g.log.Info().Int("completed", completedCount(g.player)).
					Msg("mission complete")
				if err := g.save(ctx); err != nil {
					return err
				}
			}
			// Escaped leaves the job assigned; the office re-offers it.
		case officeWait:
			g.GW.Say(office.DeclineText)
			g.GW.Pause(waitBeat)
		case officeEquip:
			if err := g.equipMenu(ctx); err != nil {
				return err
			}
		case officeRetire:
			g.log.Info().Msg("operative retired")
			return g.save(ctx)
		}
		if err := g.save(ctx); err != nil {
			return err
		}
	}
	return nil
}

// visitOffice renders the mission office and returns the validated menu
// slot. Demo visits accept any input and return slot zero; they are the
// tutorial's guided look, not a real visit.
func (g *Game) visitOffice(demo bool) (int, error) {
	office := g.Catalog.Locations[types.LocMissionOffice]
	g.showLocation(types.LocMissionOffice, office.Actions)
	g.GW.Pause(noticeBeat)
	for _, note := range office.Notifications {
		g.GW.Say(note)
		g.GW.Pause(noticeBeat)
	}
	if demo {
		g.GW.Say(office.DemoHint)
	}
	for {
		choice, err := g.prompt(office.Prompt)
		if err != nil {
			return 0, err
		}
		if demo {
			g.GW.Say(g.Catalog.Misc.DemoComplete)
			return 0, nil
		}
		slot, ok := engine.ParseChoice(choice, len(office.Actions))
		if !ok {
			g.GW.Say(g.Catalog.Combat.PlayerInvalid)
			continue
		}
		return slot, nil
	}
}

func completedCount(p *types.Player) int {
	if n, ok := p.Missions[types.MissionCompleted].(int); ok {
		return n
	}
	return 0
}
