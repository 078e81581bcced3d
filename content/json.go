package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nmoretto/fieldops/types"
)

// The JSON pack layout mirrors the four shipped documents: config.json
// carries locations and all message blocks, the other three carry the
// action catalog, the tutorial script, and the new-game template.
type rawConfig struct {
	Locations map[string]types.Location `json:"locations"`
	EquipMenu types.EquipMenu           `json:"equipment_menu"`
	Combat    types.CombatText          `json:"combat"`
	Misc      types.Misc                `json:"misc"`
}

func loadJSON(dir string, ve *ValidationError) (*Catalog, error) {
	var cfg rawConfig
	if err := readJSON(filepath.Join(dir, "config.json"), &cfg); err != nil {
		return nil, err
	}

	var rawCats []rawCategory
	if err := readJSON(filepath.Join(dir, "actions.json"), &rawCats); err != nil {
		return nil, err
	}

	var tut types.Tutorial
	if err := readJSON(filepath.Join(dir, "tutorial.json"), &tut); err != nil {
		return nil, err
	}

	var tmpl types.PlayerRecord
	if err := readJSON(filepath.Join(dir, "player.json"), &tmpl); err != nil {
		return nil, err
	}

	cat := &Catalog{
		Locations: cfg.Locations,
		Tutorial:  tut,
		Template:  tmpl,
		Combat:    cfg.Combat,
		EquipMenu: cfg.EquipMenu,
		Misc:      cfg.Misc,
	}
	for i, rc := range rawCats {
		at := fmt.Sprintf("actions.json[%d] %q", i, rc.Key)
		cat.Actions = append(cat.Actions, buildCategory(rc, at, ve))
	}
	return cat, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return nil
}
