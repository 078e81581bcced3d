// Package engine drives turn-based encounters between the operative and a
// single enemy, one menu-selected move per round.
package engine

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nmoretto/fieldops/engine/rules"
	"github.com/nmoretto/fieldops/types"
)

// DefenseBaseline is the defense value every encounter resets to on
// termination. Defend stacking never survives an encounter.
const DefenseBaseline = 5

const (
	playerDefendBonus = 5
	enemyDefendBonus  = 3
)

// enemyMoveWeights is the enemy's biased draw: three attack tokens to one
// defense token, consumed as a single Intn(4).
var enemyMoveWeights = []int{3, 1}

const (
	enemyMoveAttack = iota
	enemyMoveDefense
)

// Outcome is the state an encounter terminates in.
type Outcome int

const (
	Ongoing Outcome = iota
	PlayerDefeated
	EnemyDefeated
	Escaped
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case PlayerDefeated:
		return "player_defeated"
	case EnemyDefeated:
		return "enemy_defeated"
	case Escaped:
		return "escaped"
	}
	return "unknown"
}

// EffectiveAttack is the player's attack including the equipped weapon's
// bonus.
func EffectiveAttack(p *types.Player) int {
	if p.Weapon == types.NoWeapon {
		return p.BaseAttack
	}
	return p.BaseAttack + p.Inventory[p.Weapon].AttackBonus
}

// Encounter drives one combat session between the player and an enemy.
// The enemy is owned by the encounter and discarded afterwards; the
// player's hp, defense, and mission state carry over.
type Encounter struct {
	Player  *types.Player
	Enemy   *types.Enemy
	Catalog []types.Category
	Text    types.CombatText
	GW      Gateway
	RNG     *RNG
	Log     zerolog.Logger
}

// Run loops rounds until a terminal state and returns it. Invalid input
// re-offers the same round without consuming a turn, indefinitely. The
// error return is non-nil only when the gateway can no longer yield
// input; the defense reset runs on every exit path.
func (e *Encounter) Run() (Outcome, error) {
	log := e.Log.With().
		Str("encounter", uuid.NewString()).
		Str("enemy", e.Enemy.Name).
		Logger()

	enemyName := e.Enemy.Name
	if enemyName == "" {
		enemyName = e.Text.Unknown
	}

	e.GW.Say("")
	e.GW.Say(Expand(e.Text.StartText, "{enemy}", enemyName))
	if e.Enemy.Description != "" {
		e.GW.Say(Expand(e.Text.AppearanceText, "{desc}", e.Enemy.Description))
	}
	log.Debug().
		Int("player_hp", e.Player.HP).
		Int("enemy_hp", e.Enemy.HP).
		Msg("encounter started")

	outcome := Ongoing
	round := 0
	for e.Player.HP > 0 && e.Enemy.HP > 0 {
		round++
		e.GW.Say("")
		e.GW.Say(fmt.Sprintf("%s HP: %d, %s HP: %d",
			e.Player.Name, e.Player.HP, enemyName, e.Enemy.HP))

		available := rules.Available(e.Player, e.Catalog)
		e.GW.Say("Available actions:")
		for i, cat := range available {
			e.GW.Say(fmt.Sprintf("%d. %s", i+1, cat.Name))
		}
		choice, err := e.GW.Prompt(e.Text.PromptMain)
		if err != nil {
			e.Player.Defense = DefenseBaseline
			log.Warn().Err(err).Msg("input closed mid-encounter")
			return outcome, err
		}
		idx, ok := ParseChoice(choice, len(available))
		if !ok {
			e.GW.Say(e.Text.PlayerInvalid)
			continue
		}
		category := available[idx-1]
		moveName := category.Name
		if len(category.Options) > 0 {
			for i, opt := range category.Options {
				e.GW.Say(fmt.Sprintf("%d. %s", i+1, opt.Name))
			}
			sub, err := e.GW.Prompt(e.Text.PromptSub)
			if err != nil {
				e.Player.Defense = DefenseBaseline
				log.Warn().Err(err).Msg("input closed mid-encounter")
				return outcome, err
			}
			subIdx, ok := ParseChoice(sub, len(category.Options))
			if !ok {
				e.GW.Say(e.Text.PlayerInvalid)
				continue
			}
			moveName = category.Options[subIdx-1].Name
		}

		switch category.Key {
		case types.KeyAttack:
			damage := max(EffectiveAttack(e.Player)-e.Enemy.Defense, 0)
			e.Enemy.HP -= damage
			e.GW.Say(Expand(e.Text.PlayerAttack,
				"{player}", e.Player.Name, "{enemy}", enemyName,
				"{dmg}", strconv.Itoa(damage), "{move}", moveName))
			log.Debug().Int("round", round).Str("move", moveName).
				Int("damage", damage).Int("enemy_hp", e.Enemy.HP).
				Msg("player attack")
		case types.KeyDefend:
			e.GW.Say(Expand(e.Text.PlayerDefend,
				"{player}", e.Player.Name, "{move}", moveName))
			e.Player.Defense += playerDefendBonus
			log.Debug().Int("round", round).Int("defense", e.Player.Defense).
				Msg("player defend")
		case types.KeySkill:
			e.GW.Say(Expand(e.Text.PlayerSkill,
				"{player}", e.Player.Name, "{move}", moveName))
		case types.KeyItem:
			e.GW.Say(Expand(e.Text.PlayerItem,
				"{player}", e.Player.Name, "{move}", moveName))
		case types.KeyEscape:
			e.GW.Say(Expand(e.Text.PlayerEscape, "{player}", e.Player.Name))
			outcome = Escaped
		default:
			e.GW.Say(e.Text.PlayerInvalid)
			continue
		}
		if outcome == Escaped {
			break
		}

		if e.Enemy.HP <= 0 {
			e.GW.Say(Expand(e.Text.EnemyDefeated, "{enemy}", enemyName))
			outcome = EnemyDefeated
			break
		}

		e.GW.Say(Expand(e.Text.EnemyTurn, "{enemy}", enemyName))
		if e.RNG.WeightedSelect(enemyMoveWeights) == enemyMoveAttack {
			damage := max(e.Enemy.Attack-e.Player.Defense, 0)
			e.Player.HP -= damage
			e.GW.Say(Expand(e.Text.EnemyAttack,
				"{enemy}", enemyName, "{player}", e.Player.Name,
				"{dmg}", strconv.Itoa(damage)))
			log.Debug().Int("round", round).Int("damage", damage).
				Int("player_hp", e.Player.HP).Msg("enemy attack")
		} else {
			e.GW.Say(Expand(e.Text.EnemyDefend, "{enemy}", enemyName))
			e.Enemy.Defense += enemyDefendBonus
			log.Debug().Int("round", round).Int("enemy_defense", e.Enemy.Defense).
				Msg("enemy defend")
		}

		if e.Player.HP <= 0 {
			e.GW.Say(Expand(e.Text.PlayerDefeated, "{player}", e.Player.Name))
			outcome = PlayerDefeated
			break
		}
	}

	if outcome == Ongoing {
		// The loop condition can only end things here when a combatant
		// entered the encounter already downed.
		if e.Player.HP <= 0 {
			outcome = PlayerDefeated
		} else {
			outcome = EnemyDefeated
		}
	}

	e.Player.Defense = DefenseBaseline
	log.Info().Stringer("outcome", outcome).Int("rounds", round).
		Int("player_hp", e.Player.HP).Msg("encounter finished")
	return outcome, nil
}
