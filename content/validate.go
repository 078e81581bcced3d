package content

import (
	"fmt"
	"strings"

	"github.com/nmoretto/fieldops/types"
)

// ValidationError collects all content errors and warnings found during
// a load. Warnings alone never fail the load.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// knownCategoryKeys are the action keys the combat engine dispatches on.
var knownCategoryKeys = map[string]bool{
	types.KeyAttack: true,
	types.KeyDefend: true,
	types.KeySkill:  true,
	types.KeyItem:   true,
	types.KeyEscape: true,
}

// requiredLocations must exist for the game flow to run.
var requiredLocations = []string{types.LocTrainingGround, types.LocMissionOffice}

// missionMenuLen is how many numbered choices the mission office renders.
const missionMenuLen = 4

// coreTutorialSteps is the number of steps the training script walks
// through unconditionally.
const coreTutorialSteps = 3

// validate checks the catalog for the structural problems that would
// break a session at runtime, appending to ve.
func validate(cat *Catalog, ve *ValidationError) {
	for _, key := range requiredLocations {
		if _, ok := cat.Locations[key]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf("required location %q not declared", key))
		}
	}
	if office, ok := cat.Locations[types.LocMissionOffice]; ok {
		if len(office.Actions) != missionMenuLen {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"mission_office must declare exactly %d actions, got %d",
				missionMenuLen, len(office.Actions)))
		}
	}

	if len(cat.Actions) == 0 {
		ve.Errors = append(ve.Errors, "no action categories declared")
	}
	for i, c := range cat.Actions {
		at := fmt.Sprintf("action category %d", i+1)
		if c.Key == "" {
			ve.Errors = append(ve.Errors, at+" has no key")
		} else if !knownCategoryKeys[c.Key] {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"%s uses unrecognized key %q; the combat menu treats it as invalid input", at, c.Key))
		}
		if c.Name == "" {
			ve.Errors = append(ve.Errors, at+" has no name")
		}
		for j, opt := range c.Options {
			if opt.Name == "" {
				ve.Errors = append(ve.Errors, fmt.Sprintf("%s option %d has no name", at, j+1))
			}
		}
	}

	if len(cat.Tutorial.Steps) < coreTutorialSteps {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"tutorial declares %d steps, need at least %d",
			len(cat.Tutorial.Steps), coreTutorialSteps))
	}

	for _, f := range combatTextFields(cat.Combat) {
		if f.value == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf("combat text %q is empty", f.name))
		}
	}

	if w := cat.Template.Equipment.Weapon; w != nil {
		found := false
		for _, item := range cat.Template.Inventory {
			if item.Name == *w {
				found = true
				break
			}
		}
		if !found {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"template weapon %q is not in the template inventory", *w))
		}
	}
}

type textField struct {
	name  string
	value string
}

func combatTextFields(ct types.CombatText) []textField {
	return []textField{
		{"start_text", ct.StartText},
		{"appearance_text", ct.AppearanceText},
		{"prompt_main", ct.PromptMain},
		{"prompt_sub", ct.PromptSub},
		{"player_invalid", ct.PlayerInvalid},
		{"player_attack", ct.PlayerAttack},
		{"player_defend", ct.PlayerDefend},
		{"player_skill", ct.PlayerSkill},
		{"player_item", ct.PlayerItem},
		{"player_escape", ct.PlayerEscape},
		{"enemy_turn", ct.EnemyTurn},
		{"enemy_attack", ct.EnemyAttack},
		{"enemy_defend", ct.EnemyDefend},
		{"enemy_defeated", ct.EnemyDefeated},
		{"player_defeated", ct.PlayerDefeated},
		{"unknown", ct.Unknown},
	}
}
