package content

import (
	"fmt"
	"sort"

	"github.com/nmoretto/fieldops/types"
)

// rawCategory is an action category before condition decoding. Both the
// JSON and the Lua loader produce this shape.
type rawCategory struct {
	Key        string         `json:"key"`
	Name       string         `json:"name"`
	Conditions map[string]any `json:"conditions"`
	Options    []rawOption    `json:"options"`
}

type rawOption struct {
	Name       string         `json:"name"`
	Conditions map[string]any `json:"conditions"`
}

// buildCategory decodes one raw category into a typed one. Condition
// problems are recorded on ve under the position label at.
func buildCategory(raw rawCategory, at string, ve *ValidationError) types.Category {
	cat := types.Category{
		Key:        raw.Key,
		Name:       raw.Name,
		Conditions: decodeConditions(raw.Conditions, at, ve),
	}
	for _, opt := range raw.Options {
		optAt := fmt.Sprintf("%s: option %q", at, opt.Name)
		cat.Options = append(cat.Options, types.Option{
			Name:       opt.Name,
			Conditions: decodeConditions(opt.Conditions, optAt, ve),
		})
	}
	return cat
}

// decodeConditions turns a raw condition object into tagged predicates.
// Keys are visited in sorted order so the decoded slice is stable.
func decodeConditions(raw map[string]any, at string, ve *ValidationError) []types.Condition {
	if len(raw) == 0 {
		return nil
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var conds []types.Condition
	for _, k := range keys {
		c, err := decodeCondition(k, raw[k])
		if err != nil {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: %v", at, err))
			continue
		}
		conds = append(conds, c)
	}
	return conds
}

func decodeCondition(key string, value any) (types.Condition, error) {
	switch key {
	case "weapon":
		switch v := value.(type) {
		case bool:
			if !v {
				return types.Condition{}, fmt.Errorf("condition %q takes true or a weapon name, got false", key)
			}
			return types.Condition{Kind: types.HasAnyWeapon}, nil
		case string:
			return types.Condition{Kind: types.HasNamedWeapon, Name: v}, nil
		default:
			return types.Condition{}, fmt.Errorf("condition %q takes true or a weapon name, got %T", key, value)
		}
	case "has_item":
		name, ok := value.(string)
		if !ok {
			return types.Condition{}, fmt.Errorf("condition %q takes an item name, got %T", key, value)
		}
		return types.Condition{Kind: types.HasItem, Name: name}, nil
	case "mission":
		return types.Condition{Kind: types.MissionEquals, Value: intify(value)}, nil
	default:
		return types.Condition{}, fmt.Errorf("unknown condition key %q", key)
	}
}

// intify converts whole-number floats (how JSON and Lua surface integer
// literals) to int so condition values compare equal against player state.
func intify(v any) any {
	if f, ok := v.(float64); ok && f == float64(int(f)) {
		return int(f)
	}
	return v
}
