// Package types defines the shared data structures for the fieldops game.
// This package contains only definitions, no behavior.
package types

// Action category keys recognized by the combat engine.
const (
	KeyAttack = "attack"
	KeyDefend = "defend"
	KeySkill  = "skill"
	KeyItem   = "item"
	KeyEscape = "escape"
)

// Location keys every content pack must declare.
const (
	LocTrainingGround = "training_ground"
	LocMissionOffice  = "mission_office"
)

// Mission-state keys in Player.Missions.
const (
	MissionCurrent   = "current"
	MissionCompleted = "completed"
)

// NoWeapon is the Player.Weapon value for an unarmed operative.
const NoWeapon = -1

// Item is a piece of equipment carried in an inventory. Immutable once
// created; owned by whichever inventory holds it.
type Item struct {
	Name         string `json:"name"`
	AttackBonus  int    `json:"attack_bonus"`
	DefenseBonus int    `json:"defense_bonus"`
}

// Player holds the operative's runtime state. HP is never clamped; any
// value at or below zero marks defeat.
type Player struct {
	Name       string
	HP         int
	BaseAttack int
	Defense    int
	Inventory  []Item
	Weapon     int            // index into Inventory, NoWeapon when unarmed
	Missions   map[string]any // mission-state keys such as "current" and "completed"
}

// Enemy is a combat opponent. Created fresh per encounter, never persisted.
type Enemy struct {
	Name        string
	HP          int
	Attack      int
	Defense     int
	Description string
}

// ConditionKind tags one decoded eligibility predicate.
type ConditionKind string

const (
	HasAnyWeapon   ConditionKind = "has_any_weapon"
	HasNamedWeapon ConditionKind = "has_named_weapon"
	HasItem        ConditionKind = "has_item"
	MissionEquals  ConditionKind = "mission_equals"
)

// Condition is a single eligibility predicate, decoded from content at
// load time. Name is set for the named kinds, Value for MissionEquals.
type Condition struct {
	Kind  ConditionKind
	Name  string
	Value any
}

// Option is a sub-move within an action category.
type Option struct {
	Name       string
	Conditions []Condition
}

// Category is a top-level player action grouping. A category with no
// options is a leaf action usable directly.
type Category struct {
	Key        string // attack|defend|skill|item|escape
	Name       string
	Conditions []Condition
	Options    []Option
}

// Location describes one visitable place. The mission office carries the
// extra prompt/accept/decline/demo fields; other locations leave them empty.
type Location struct {
	Description   string   `json:"description"`
	NPCs          []string `json:"npcs,omitempty"`
	Actions       []string `json:"actions,omitempty"`
	Notifications []string `json:"notifications,omitempty"`
	Prompt        string   `json:"prompt,omitempty"`
	AcceptText    string   `json:"accept_text,omitempty"`
	DeclineText   string   `json:"decline_text,omitempty"`
	DemoHint      string   `json:"demo_hint,omitempty"`
}

// TutorialStep is one stage of the training script. Actions double as the
// displayed choices and the accepted keywords for the step.
type TutorialStep struct {
	Actions []string `json:"actions,omitempty"`
	Line    string   `json:"line,omitempty"`
	Info    string   `json:"info,omitempty"`
	Success string   `json:"success,omitempty"`
	Demo    bool     `json:"demo,omitempty"`
}

// Tutorial is the scripted training sequence for new operatives.
type Tutorial struct {
	StickItem Item           `json:"stick_item"`
	Steps     []TutorialStep `json:"steps"`
}

// CombatText holds the combat engine's message templates. Placeholders
// {player}, {enemy}, {dmg}, {move} and {desc} are expanded per line.
type CombatText struct {
	StartText      string `json:"start_text"`
	AppearanceText string `json:"appearance_text"`
	PromptMain     string `json:"prompt_main"`
	PromptSub      string `json:"prompt_sub"`
	PlayerInvalid  string `json:"player_invalid"`
	PlayerAttack   string `json:"player_attack"`
	PlayerDefend   string `json:"player_defend"`
	PlayerSkill    string `json:"player_skill"`
	PlayerItem     string `json:"player_item"`
	PlayerEscape   string `json:"player_escape"`
	EnemyTurn      string `json:"enemy_turn"`
	EnemyAttack    string `json:"enemy_attack"`
	EnemyDefend    string `json:"enemy_defend"`
	EnemyDefeated  string `json:"enemy_defeated"`
	PlayerDefeated string `json:"player_defeated"`
	Unknown        string `json:"unknown"` // display name for a nameless enemy
}

// EquipMenu holds the equipment menu strings.
type EquipMenu struct {
	Title   string `json:"title"`
	Prompt  string `json:"prompt"`
	Success string `json:"success"` // {item}
	Cancel  string `json:"cancel"`
}

// Misc holds the remaining top-level message strings, including the
// display names for the two scripted enemies.
type Misc struct {
	CodeName         string `json:"code_name"` // {name}
	Awakening        string `json:"awakening"` // {name}
	Waiting          string `json:"waiting"`
	GameOver         string `json:"game_over"`
	MissionComplete  string `json:"mission_complete"`
	MissionEnemyName string `json:"mission_enemy_name"`
	MissionEnemyDesc string `json:"mission_enemy_desc"`
	InstructorName   string `json:"instructor_name"`
	InstructorDesc   string `json:"instructor_desc"`
	DemoComplete     string `json:"demo_complete"`
}

// EquipmentRecord is the persisted equipment block. Weapon is nil when
// nothing is equipped.
type EquipmentRecord struct {
	Weapon *string `json:"weapon"`
}

// PlayerRecord is the flat player document. The same shape serves as the
// new-game template in content and as the save record on disk. Stats keys
// absent from the map fall back to the standard-issue defaults.
type PlayerRecord struct {
	Name      string          `json:"name,omitempty"`
	Stats     map[string]int  `json:"stats"`
	Inventory []Item          `json:"inventory"`
	Equipment EquipmentRecord `json:"equipment"`
	Missions  map[string]any  `json:"missions"`
}
