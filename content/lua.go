package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nmoretto/fieldops/types"
)

// collector accumulates Lua declarations during pack execution. The
// singleton blocks follow last-wins semantics when declared twice.
type collector struct {
	locations []rawLocation
	actions   []*lua.LTable
	tutorial  *lua.LTable
	template  *lua.LTable
	combat    *lua.LTable
	equipMenu *lua.LTable
	misc      *lua.LTable
}

type rawLocation struct {
	key   string
	table *lua.LTable
}

func loadLua(dir string, ve *ValidationError) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range files {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	return compilePack(coll, ve)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals so a pack cannot reach the host.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// registerAPI registers the declarative pack constructors as globals.
func registerAPI(L *lua.LState, coll *collector) {
	// Location "key" { ... } is curried: Location("key") returns a
	// function that takes the body table.
	L.SetGlobal("Location", L.NewFunction(func(L *lua.LState) int {
		key := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.locations = append(coll.locations, rawLocation{key: key, table: tbl})
			return 0
		}))
		return 1
	}))

	// Action { key = "...", name = "...", ... } declarations append in
	// source order, which is the order the combat menu renders.
	L.SetGlobal("Action", L.NewFunction(func(L *lua.LState) int {
		coll.actions = append(coll.actions, L.CheckTable(1))
		return 0
	}))

	L.SetGlobal("Tutorial", L.NewFunction(func(L *lua.LState) int {
		coll.tutorial = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("PlayerTemplate", L.NewFunction(func(L *lua.LState) int {
		coll.template = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("CombatText", L.NewFunction(func(L *lua.LState) int {
		coll.combat = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("EquipMenu", L.NewFunction(func(L *lua.LState) int {
		coll.equipMenu = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("Misc", L.NewFunction(func(L *lua.LState) int {
		coll.misc = L.CheckTable(1)
		return 0
	}))
}

// compilePack converts the collected tables into a Catalog.
func compilePack(coll *collector, ve *ValidationError) (*Catalog, error) {
	required := []struct {
		tbl  *lua.LTable
		name string
	}{
		{coll.tutorial, "Tutorial"},
		{coll.template, "PlayerTemplate"},
		{coll.combat, "CombatText"},
		{coll.equipMenu, "EquipMenu"},
		{coll.misc, "Misc"},
	}
	for _, r := range required {
		if r.tbl == nil {
			return nil, fmt.Errorf("no %s{} declaration found", r.name)
		}
	}

	cat := &Catalog{Locations: map[string]types.Location{}}
	for _, raw := range coll.locations {
		cat.Locations[raw.key] = compileLocation(raw.table)
	}
	for i, tbl := range coll.actions {
		at := fmt.Sprintf("action %d %q", i+1, getString(tbl, "key"))
		cat.Actions = append(cat.Actions, compileCategory(tbl, at, ve))
	}
	cat.Tutorial = compileTutorial(coll.tutorial)
	cat.Template = compileTemplate(coll.template)
	cat.Combat = compileCombatText(coll.combat)
	cat.EquipMenu = compileEquipMenu(coll.equipMenu)
	cat.Misc = compileMisc(coll.misc)
	return cat, nil
}

func compileLocation(tbl *lua.LTable) types.Location {
	return types.Location{
		Description:   getString(tbl, "description"),
		NPCs:          tableToStringSlice(getTable(tbl, "npcs")),
		Actions:       tableToStringSlice(getTable(tbl, "actions")),
		Notifications: tableToStringSlice(getTable(tbl, "notifications")),
		Prompt:        getString(tbl, "prompt"),
		AcceptText:    getString(tbl, "accept_text"),
		DeclineText:   getString(tbl, "decline_text"),
		DemoHint:      getString(tbl, "demo_hint"),
	}
}

func compileCategory(tbl *lua.LTable, at string, ve *ValidationError) types.Category {
	raw := rawCategory{
		Key:        getString(tbl, "key"),
		Name:       getString(tbl, "name"),
		Conditions: tableToAnyMap(getTable(tbl, "conditions")),
	}
	if opts := getTable(tbl, "options"); opts != nil {
		for i := 1; i <= opts.MaxN(); i++ {
			ot, ok := opts.RawGetInt(i).(*lua.LTable)
			if !ok {
				continue
			}
			raw.Options = append(raw.Options, rawOption{
				Name:       getString(ot, "name"),
				Conditions: tableToAnyMap(getTable(ot, "conditions")),
			})
		}
	}
	return buildCategory(raw, at, ve)
}

func compileTutorial(tbl *lua.LTable) types.Tutorial {
	tut := types.Tutorial{}
	if stick := getTable(tbl, "stick_item"); stick != nil {
		tut.StickItem = compileItem(stick)
	}
	if steps := getTable(tbl, "steps"); steps != nil {
		for i := 1; i <= steps.MaxN(); i++ {
			if st, ok := steps.RawGetInt(i).(*lua.LTable); ok {
				tut.Steps = append(tut.Steps, compileStep(st))
			}
		}
	}
	return tut
}

func compileStep(tbl *lua.LTable) types.TutorialStep {
	return types.TutorialStep{
		Actions: tableToStringSlice(getTable(tbl, "actions")),
		Line:    getString(tbl, "line"),
		Info:    getString(tbl, "info"),
		Success: getString(tbl, "success"),
		Demo:    getBool(tbl, "demo", false),
	}
}

func compileItem(tbl *lua.LTable) types.Item {
	return types.Item{
		Name:         getString(tbl, "name"),
		AttackBonus:  getInt(tbl, "attack_bonus"),
		DefenseBonus: getInt(tbl, "defense_bonus"),
	}
}

func compileTemplate(tbl *lua.LTable) types.PlayerRecord {
	rec := types.PlayerRecord{
		Name: getString(tbl, "name"),
	}
	if stats := getTable(tbl, "stats"); stats != nil {
		rec.Stats = map[string]int{}
		stats.ForEach(func(k, v lua.LValue) {
			ks, ok := k.(lua.LString)
			if !ok {
				return
			}
			if n, ok := v.(lua.LNumber); ok {
				rec.Stats[string(ks)] = int(n)
			}
		})
	}
	if inv := getTable(tbl, "inventory"); inv != nil {
		for i := 1; i <= inv.MaxN(); i++ {
			if it, ok := inv.RawGetInt(i).(*lua.LTable); ok {
				rec.Inventory = append(rec.Inventory, compileItem(it))
			}
		}
	}
	if eq := getTable(tbl, "equipment"); eq != nil {
		if w := getString(eq, "weapon"); w != "" {
			rec.Equipment.Weapon = &w
		}
	}
	if m := getTable(tbl, "missions"); m != nil {
		rec.Missions = tableToAnyMap(m)
	}
	return rec
}

func compileCombatText(tbl *lua.LTable) types.CombatText {
	return types.CombatText{
		StartText:      getString(tbl, "start_text"),
		AppearanceText: getString(tbl, "appearance_text"),
		PromptMain:     getString(tbl, "prompt_main"),
		PromptSub:      getString(tbl, "prompt_sub"),
		PlayerInvalid:  getString(tbl, "player_invalid"),
		PlayerAttack:   getString(tbl, "player_attack"),
		PlayerDefend:   getString(tbl, "player_defend"),
		PlayerSkill:    getString(tbl, "player_skill"),
		PlayerItem:     getString(tbl, "player_item"),
		PlayerEscape:   getString(tbl, "player_escape"),
		EnemyTurn:      getString(tbl, "enemy_turn"),
		EnemyAttack:    getString(tbl, "enemy_attack"),
		EnemyDefend:    getString(tbl, "enemy_defend"),
		EnemyDefeated:  getString(tbl, "enemy_defeated"),
		PlayerDefeated: getString(tbl, "player_defeated"),
		Unknown:        getString(tbl, "unknown"),
	}
}

func compileEquipMenu(tbl *lua.LTable) types.EquipMenu {
	return types.EquipMenu{
		Title:   getString(tbl, "title"),
		Prompt:  getString(tbl, "prompt"),
		Success: getString(tbl, "success"),
		Cancel:  getString(tbl, "cancel"),
	}
}

func compileMisc(tbl *lua.LTable) types.Misc {
	return types.Misc{
		CodeName:         getString(tbl, "code_name"),
		Awakening:        getString(tbl, "awakening"),
		Waiting:          getString(tbl, "waiting"),
		GameOver:         getString(tbl, "game_over"),
		MissionComplete:  getString(tbl, "mission_complete"),
		MissionEnemyName: getString(tbl, "mission_enemy_name"),
		MissionEnemyDesc: getString(tbl, "mission_enemy_desc"),
		InstructorName:   getString(tbl, "instructor_name"),
		InstructorDesc:   getString(tbl, "instructor_desc"),
		DemoComplete:     getString(tbl, "demo_complete"),
	}
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getInt returns an integer field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToStringSlice converts the array part of a Lua table to []string.
func tableToStringSlice(tbl *lua.LTable) []string {
	if tbl == nil {
		return nil
	}
	var out []string
	for i := 1; i <= tbl.MaxN(); i++ {
		if s, ok := tbl.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// tableToAnyMap converts a Lua table to a map[string]any.
func tableToAnyMap(tbl *lua.LTable) map[string]any {
	if tbl == nil {
		return nil
	}
	m := map[string]any{}
	tbl.ForEach(func(k, v lua.LValue) {
		if ks, ok := k.(lua.LString); ok {
			m[string(ks)] = toGoValue(v)
		}
	})
	return m
}

// toGoValue converts a Lua value to a Go value recursively. Whole
// numbers come back as int, matching the JSON decode path.
func toGoValue(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == float64(int(f)) {
			return int(f)
		}
		return f
	case *lua.LNilType:
		return nil
	case lua.LString:
		return string(val)
	case *lua.LTable:
		maxN := val.MaxN()
		if maxN > 0 {
			arr := make([]any, 0, maxN)
			for i := 1; i <= maxN; i++ {
				arr = append(arr, toGoValue(val.RawGetInt(i)))
			}
			return arr
		}
		m := map[string]any{}
		val.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				m[string(ks)] = toGoValue(v)
			}
		})
		return m
	default:
		return nil
	}
}
