// Package content loads a game data pack from a directory into an
// immutable Catalog. Packs ship either as JSON documents or as Lua
// scripts evaluated in a sandboxed VM; the VM is discarded after
// loading and the rest of the program only ever sees the Catalog.
package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nmoretto/fieldops/types"
)

// Catalog aggregates everything a game session reads from disk. It is
// built once by Load and never mutated afterwards.
type Catalog struct {
	Locations map[string]types.Location
	Actions   []types.Category
	Tutorial  types.Tutorial
	Template  types.PlayerRecord
	Combat    types.CombatText
	EquipMenu types.EquipMenu
	Misc      types.Misc
}

// Load reads the pack in dir and returns the validated Catalog. A pack
// containing any .lua file is treated as a Lua pack; otherwise Load
// expects the four JSON documents (config.json, actions.json,
// tutorial.json, player.json). Semantic problems aggregate into a
// *ValidationError; warnings are logged and do not fail the load.
func Load(dir string, log zerolog.Logger) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	hasLua := false
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			hasLua = true
			break
		}
	}

	ve := &ValidationError{}
	var cat *Catalog
	if hasLua {
		cat, err = loadLua(dir, ve)
	} else {
		cat, err = loadJSON(dir, ve)
	}
	if err != nil {
		return nil, err
	}

	finish(cat)
	validate(cat, ve)

	for _, w := range ve.Warnings {
		log.Warn().Str("dir", dir).Msg(w)
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}

	log.Debug().
		Str("dir", dir).
		Bool("lua", hasLua).
		Int("locations", len(cat.Locations)).
		Int("categories", len(cat.Actions)).
		Int("tutorial_steps", len(cat.Tutorial.Steps)).
		Msg("content pack loaded")
	return cat, nil
}

// finish applies the documented content defaults after either loader.
func finish(cat *Catalog) {
	if cat.Tutorial.StickItem.Name == "" {
		cat.Tutorial.StickItem.Name = "stick"
	}
	for k, v := range cat.Template.Missions {
		cat.Template.Missions[k] = intify(v)
	}
}
