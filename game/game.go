// Package game runs the session flow around the combat engine: the
// start menu, the training-ground tutorial, and the mission-office
// loop. Content supplies every player-facing string except the fixed
// menu scaffolding; progress goes through the storage gateway after
// every state-changing step.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nmoretto/fieldops/content"
	"github.com/nmoretto/fieldops/engine"
	"github.com/nmoretto/fieldops/engine/state"
	"github.com/nmoretto/fieldops/storage"
	"github.com/nmoretto/fieldops/types"
)

// Prompts for the fixed menus. Location and office prompts come from
// content; these frame the scaffolding around them.
const (
	promptMenu     = "Select an option: "
	promptAction   = "Choose an action: "
	promptInteract = "Choose an interaction: "
)

// Start menu choices match the original's literal "1"/"2" comparison,
// not ParseChoice, so "01" stays invalid here.
const (
	menuNewGame  = "1"
	menuLoadGame = "2"
)

// Game wires one interactive session. All fields are required; the
// caller owns the gateway's lifetime.
type Game struct {
	Catalog *content.Catalog
	Store   storage.Store
	GW      engine.Gateway
	RNG     *engine.RNG
	Log     zerolog.Logger

	player *types.Player
	log    zerolog.Logger
}

// Run drives a full session from the start menu to retirement, defeat,
// or the host closing its input. The error is non-nil when input closes
// mid-session or a save fails; a finished game returns nil.
func (g *Game) Run(ctx context.Context) error {
	g.log = g.Log.With().Str("session", uuid.NewString()).Logger()

	isNew, err := g.startMenu(ctx)
	if err != nil {
		return err
	}
	g.pushStatus()
	g.log.Info().Str("operative", g.player.Name).Bool("new_game", isNew).
		Msg("session started")

	misc := g.Catalog.Misc
	g.GW.Say(engine.Expand(misc.CodeName, "{name}", g.player.Name))
	if isNew {
		g.GW.Say(engine.Expand(misc.Awakening, "{name}", g.player.Name))
		if err := g.tutorial(ctx); err != nil {
			return err
		}
		if g.player.HP <= 0 {
			g.GW.Say(misc.GameOver)
			return nil
		}
	}
	g.GW.Say(misc.Waiting)
	return g.missionLoop(ctx)
}

// startMenu loops until the player starts or resumes an operation. A
// fresh start saves immediately so the record exists from minute one.
func (g *Game) startMenu(ctx context.Context) (isNew bool, err error) {
	for {
		g.GW.Say("1. New operation")
		g.GW.Say("2. Resume operation")
		choice, err := g.prompt(promptMenu)
		if err != nil {
			return false, err
		}
		switch choice {
		case menuNewGame:
			g.player = state.NewPlayer(g.Catalog.Template, g.RNG)
			if err := g.save(ctx); err != nil {
				return false, err
			}
			return true, nil
		case menuLoadGame:
			rec, err := g.Store.Load(ctx)
			if errors.Is(err, storage.ErrNoSave) {
				g.GW.Say("No save record found.")
				continue
			}
			if err != nil {
				g.log.Warn().Err(err).Msg("save record unreadable")
				g.GW.Say("The save record could not be read.")
				continue
			}
			g.player = state.NewPlayer(rec, g.RNG)
			return false, nil
		default:
			g.GW.Say(g.Catalog.Combat.PlayerInvalid)
		}
	}
}

// encounter runs one combat session and saves the post-reset state. The
// save is skipped when input closed mid-fight; the last good record
// stands.
func (g *Game) encounter(ctx context.Context, enemy *types.Enemy) (engine.Outcome, error) {
	enc := &engine.Encounter{
		Player:  g.player,
		Enemy:   enemy,
		Catalog: g.Catalog.Actions,
		Text:    g.Catalog.Combat,
		GW:      g.GW,
		RNG:     g.RNG,
		Log:     g.log,
	}
	outcome, err := enc.Run()
	if err != nil {
		return outcome, err
	}
	return outcome, g.save(ctx)
}

func (g *Game) save(ctx context.Context) error {
	if err := g.Store.Save(ctx, state.Snapshot(g.player)); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	g.pushStatus()
	g.log.Debug().Int("hp", g.player.HP).Msg("progress saved")
	return nil
}

// pushStatus hands hosts with a status line a rendered summary of the
// operative. Plain hosts never implement the sink and skip it.
func (g *Game) pushStatus() {
	sink, ok := g.GW.(engine.StatusSink)
	if !ok {
		return
	}
	weapon := "unarmed"
	if item, ok := state.Weapon(g.player); ok {
		weapon = item.Name
	}
	sink.Status(fmt.Sprintf("%s | HP %d | %s | %d jobs done",
		g.player.Name, g.player.HP, weapon, completedCount(g.player)))
}

// prompt trims the raw line the way the original stripped its input.
func (g *Game) prompt(p string) (string, error) {
	in, err := g.GW.Prompt(p)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(in), nil
}
