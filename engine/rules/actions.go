package rules

import (
	"github.com/nmoretto/fieldops/types"
)

// Available derives the subset of the action catalog currently legal for
// the player, in stable catalog order. A category is dropped when its own
// conditions fail, and also when it declares options but every option
// filters out. A category declaring no options is a leaf and is kept once
// its own conditions pass. The catalog itself is never mutated.
func Available(p *types.Player, catalog []types.Category) []types.Category {
	var available []types.Category
	for _, cat := range catalog {
		if !EvalAll(cat.Conditions, p) {
			continue
		}
		var opts []types.Option
		for _, opt := range cat.Options {
			if EvalAll(opt.Conditions, p) {
				opts = append(opts, opt)
			}
		}
		if len(opts) == 0 && len(cat.Options) > 0 {
			continue
		}
		cat.Options = opts
		available = append(available, cat)
	}
	return available
}
