package game

import (
	"context"
	"strings"

	"github.com/nmoretto/fieldops/engine/state"
	"github.com/nmoretto/fieldops/types"
)

// The sparring instructor's stat block, fixed by the training script.
const (
	instructorHP      = 30
	instructorAttack  = 5
	instructorDefense = 2
)

// Branch keywords for the guided steps. Step action lists double as the
// displayed choices, so packs list these words verbatim.
const (
	keywordInstructor = "instructor"
	keywordMenu       = "menu"
	keywordSpar       = "spar"
)

// coreSteps is how many steps run unconditionally; a fourth is the
// optional office tour.
const coreSteps = 3

// tutorial walks a new operative through the training script: take the
// stick, face the instructor, spar, and optionally tour the office.
// Validation guarantees at least the three core steps.
func (g *Game) tutorial(ctx context.Context) error {
	steps := g.Catalog.Tutorial.Steps
	stick := g.Catalog.Tutorial.StickItem

	step := steps[0]
	for {
		g.showLocation(types.LocTrainingGround, step.Actions)
		if step.Line != "" {
			g.GW.Say(step.Line)
		}
		in, err := g.prompt(promptAction)
		if err != nil {
			return err
		}
		if matchKeyword(in, step.Actions) {
			idx := state.AddItem(g.player, stick)
			if err := state.EquipIndex(g.player, idx); err != nil {
				return err
			}
			g.GW.Say(stepSuccess(step))
			if err := g.save(ctx); err != nil {
				return err
			}
			break
		}
		g.sayInvalid(in, step.Actions)
	}

	step = steps[1]
	for {
		g.showLocation(types.LocTrainingGround, step.Actions)
		if step.Info != "" {
			g.GW.Say(step.Info)
		}
		if step.Line != "" {
			g.GW.Say(step.Line)
		}
		in, err := g.prompt(promptAction)
		if err != nil {
			return err
		}
		if strings.EqualFold(in, keywordInstructor) {
			break
		}
		if strings.EqualFold(in, keywordMenu) {
			if err := g.equipMenu(ctx); err != nil {
				return err
			}
			continue
		}
		g.sayInvalid(in, step.Actions)
	}

	step = steps[2]
	for {
		g.showLocation(types.LocTrainingGround, step.Actions)
		in, err := g.prompt(promptInteract)
		if err != nil {
			return err
		}
		if strings.EqualFold(in, keywordSpar) {
			misc := g.Catalog.Misc
			enemy := &types.Enemy{
				Name:        misc.InstructorName,
				HP:          instructorHP,
				Attack:      instructorAttack,
				Defense:     instructorDefense,
				Description: misc.InstructorDesc,
			}
			if _, err := g.encounter(ctx, enemy); err != nil {
				return err
			}
			break
		}
		if strings.EqualFold(in, keywordMenu) {
			if err := g.equipMenu(ctx); err != nil {
				return err
			}
			continue
		}
		g.sayInvalid(in, step.Actions)
	}

	if g.player.HP > 0 && len(steps) > coreSteps {
		step = steps[coreSteps]
		if step.Line != "" {
			g.GW.Say(step.Line)
		}
		if step.Demo {
			if _, err := g.visitOffice(true); err != nil {
				return err
			}
		}
	}
	return g.save(ctx)
}

func stepSuccess(step types.TutorialStep) string {
	if step.Success == "" {
		return "You take it."
	}
	return step.Success
}
