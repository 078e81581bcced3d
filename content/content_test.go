package content

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nmoretto/fieldops/types"
)

// copyPack copies testdata/pack into a temp dir, replacing the files
// named in mutate with the given contents.
func copyPack(t *testing.T, mutate map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	entries, err := os.ReadDir("testdata/pack")
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join("testdata/pack", e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		if repl, ok := mutate[e.Name()]; ok {
			data = []byte(repl)
		}
		if err := os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoad_JSONPack(t *testing.T) {
	cat, err := Load("testdata/pack", zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cat.Locations) != 2 {
		t.Errorf("locations = %d, want 2", len(cat.Locations))
	}
	office, ok := cat.Locations["mission_office"]
	if !ok {
		t.Fatal("location 'mission_office' not found")
	}
	if len(office.Actions) != 4 {
		t.Errorf("mission_office actions = %d, want 4", len(office.Actions))
	}
	if office.Prompt != "Pick an option: " {
		t.Errorf("office prompt = %q", office.Prompt)
	}
	if len(office.Notifications) != 1 {
		t.Errorf("office notifications = %d, want 1", len(office.Notifications))
	}

	if len(cat.Actions) != 5 {
		t.Fatalf("categories = %d, want 5", len(cat.Actions))
	}
	wantKeys := []string{"attack", "defend", "skill", "item", "escape"}
	for i, want := range wantKeys {
		if cat.Actions[i].Key != want {
			t.Errorf("category %d key = %q, want %q", i, cat.Actions[i].Key, want)
		}
	}

	attack := cat.Actions[0]
	if len(attack.Options) != 2 {
		t.Fatalf("attack options = %d, want 2", len(attack.Options))
	}
	if len(attack.Options[0].Conditions) != 0 {
		t.Errorf("Strike conditions = %v, want none", attack.Options[0].Conditions)
	}
	wantBlade := []types.Condition{{Kind: types.HasNamedWeapon, Name: "field knife"}}
	if !reflect.DeepEqual(attack.Options[1].Conditions, wantBlade) {
		t.Errorf("Blade Rush conditions = %+v, want %+v", attack.Options[1].Conditions, wantBlade)
	}

	skill := cat.Actions[2]
	wantSkill := []types.Condition{{Kind: types.HasAnyWeapon}}
	if !reflect.DeepEqual(skill.Conditions, wantSkill) {
		t.Errorf("skill conditions = %+v, want %+v", skill.Conditions, wantSkill)
	}
	wantFocus := []types.Condition{{Kind: types.MissionEquals, Value: "standard"}}
	if !reflect.DeepEqual(skill.Options[0].Conditions, wantFocus) {
		t.Errorf("Focus conditions = %+v, want %+v", skill.Options[0].Conditions, wantFocus)
	}

	item := cat.Actions[3]
	wantItem := []types.Condition{{Kind: types.HasItem, Name: "flash canister"}}
	if !reflect.DeepEqual(item.Conditions, wantItem) {
		t.Errorf("item conditions = %+v, want %+v", item.Conditions, wantItem)
	}

	if len(cat.Tutorial.Steps) != 4 {
		t.Errorf("tutorial steps = %d, want 4", len(cat.Tutorial.Steps))
	}
	if cat.Tutorial.StickItem.Name != "training stick" {
		t.Errorf("stick name = %q", cat.Tutorial.StickItem.Name)
	}
	if cat.Tutorial.StickItem.AttackBonus != 2 {
		t.Errorf("stick attack bonus = %d, want 2", cat.Tutorial.StickItem.AttackBonus)
	}
	if !cat.Tutorial.Steps[3].Demo {
		t.Error("step 4 should be the demo step")
	}

	if cat.Template.Stats["hp"] != 100 {
		t.Errorf("template hp = %d, want 100", cat.Template.Stats["hp"])
	}
	if len(cat.Template.Inventory) != 2 {
		t.Errorf("template inventory = %d items, want 2", len(cat.Template.Inventory))
	}
	if cat.Template.Equipment.Weapon == nil || *cat.Template.Equipment.Weapon != "field knife" {
		t.Errorf("template weapon = %v, want field knife", cat.Template.Equipment.Weapon)
	}

	if cat.Combat.StartText != "{enemy} blocks your way!" {
		t.Errorf("start_text = %q", cat.Combat.StartText)
	}
	if cat.EquipMenu.Title != "Equipment" {
		t.Errorf("equip menu title = %q", cat.EquipMenu.Title)
	}
	if cat.Misc.MissionEnemyName != "Renegade courier" {
		t.Errorf("mission enemy name = %q", cat.Misc.MissionEnemyName)
	}
}

func TestLoad_LuaPackMatchesJSON(t *testing.T) {
	jsonCat, err := Load("testdata/pack", zerolog.Nop())
	if err != nil {
		t.Fatalf("Load(json) failed: %v", err)
	}
	luaCat, err := Load("testdata/luapack", zerolog.Nop())
	if err != nil {
		t.Fatalf("Load(lua) failed: %v", err)
	}
	if !reflect.DeepEqual(jsonCat, luaCat) {
		t.Errorf("Lua catalog differs from JSON catalog:\n json: %+v\n lua:  %+v", jsonCat, luaCat)
	}
}

func TestLoad_TemplateMissionsNormalized(t *testing.T) {
	cat, err := Load("testdata/pack", zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	v, ok := cat.Template.Missions["completed"]
	if !ok {
		t.Fatal("template missions missing 'completed'")
	}
	if n, ok := v.(int); !ok || n != 0 {
		t.Errorf("missions[completed] = %v (%T), want int 0", v, v)
	}
}

func TestLoad_MissingDocument_Fails(t *testing.T) {
	_, err := Load(t.TempDir(), zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for empty pack directory")
	}
	if !strings.Contains(err.Error(), "config.json") {
		t.Errorf("error = %q, expected mention of config.json", err)
	}
}

func TestLoad_MissingDirectory_Fails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent"), zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoad_UnknownConditionKey_Fails(t *testing.T) {
	dir := copyPack(t, map[string]string{
		"actions.json": `[
			{"key": "attack", "name": "Attack", "conditions": {"stamina": 3}},
			{"key": "defend", "name": "Defend"},
			{"key": "escape", "name": "Escape"}
		]`,
	})

	_, err := Load(dir, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for unknown condition key")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if !strings.Contains(err.Error(), `unknown condition key "stamina"`) {
		t.Errorf("error = %q, expected unknown condition key", err)
	}
}

func TestLoad_UnknownCategoryKey_WarnsOnly(t *testing.T) {
	dir := copyPack(t, map[string]string{
		"actions.json": `[
			{"key": "attack", "name": "Attack"},
			{"key": "taunt", "name": "Taunt"},
			{"key": "escape", "name": "Escape"}
		]`,
	})

	var buf bytes.Buffer
	cat, err := Load(dir, zerolog.New(&buf))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cat.Actions) != 3 {
		t.Errorf("categories = %d, want 3 (unknown key kept)", len(cat.Actions))
	}
	if !strings.Contains(buf.String(), "unrecognized key") {
		t.Errorf("log output = %q, expected unrecognized key warning", buf.String())
	}
}

func TestLoad_StickNameDefault(t *testing.T) {
	dir := copyPack(t, map[string]string{
		"tutorial.json": `{
			"stick_item": {"attack_bonus": 2},
			"steps": [
				{"actions": ["pick up the stick"], "line": "l", "success": "s"},
				{"actions": ["instructor", "menu"], "line": "l"},
				{"actions": ["spar", "menu"]}
			]
		}`,
	})

	cat, err := Load(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cat.Tutorial.StickItem.Name != "stick" {
		t.Errorf("stick name = %q, want default %q", cat.Tutorial.StickItem.Name, "stick")
	}
}

func TestLoad_LuaTakesPrecedence(t *testing.T) {
	// A directory holding any .lua file is a Lua pack; stray JSON is ignored.
	dir := t.TempDir()
	src, err := os.ReadFile("testdata/luapack/pack.lua")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pack.lua"), src, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cat.Actions) != 5 {
		t.Errorf("categories = %d, want 5", len(cat.Actions))
	}
}

func TestLoad_CorruptJSON_Fails(t *testing.T) {
	dir := copyPack(t, map[string]string{"player.json": `{"stats": `})
	_, err := Load(dir, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error for corrupt player.json")
	}
	if !strings.Contains(err.Error(), "player.json") {
		t.Errorf("error = %q, expected mention of player.json", err)
	}
}
